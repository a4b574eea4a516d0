//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pod_test
package pod

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.ProofOfDelivery, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, pod entities.ProofOfDelivery) (string, error)
	Update(ctx context.Context, pod entities.ProofOfDelivery) (*entities.ProofOfDelivery, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Booking, error)
	MarkPODUploaded(ctx context.Context, id string) error
}

type StaffDirectory interface {
	GetByID(ctx context.Context, id string) (*entities.Staff, error)
}

// StatusInvalidator drops memoized shipment statuses after a POD write.
type StatusInvalidator interface {
	Invalidate()
}

type NumberFactory interface {
	PODNumber(existing int64) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
