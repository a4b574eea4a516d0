//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pod_dispatch_put_test
package pod_dispatch_put

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetDispatchStatus(ctx context.Context, bookingID string, status entities.PODDispatchStatus) (*entities.ProofOfDelivery, error)
}
