//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inquiries_get_test
package inquiries_get

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
	GetInquiries(ctx context.Context) ([]entities.Inquiry, error)
}
