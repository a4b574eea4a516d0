//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inquiry_test
package inquiry

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, inquiry entities.Inquiry) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Inquiry, error)
	GetAll(ctx context.Context) ([]entities.Inquiry, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, inquiry entities.Inquiry) (*entities.Inquiry, error)
}

type VehicleDirectory interface {
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
}

type DriverDirectory interface {
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
}

// BookingGateway hands a confirmed inquiry to the external booking
// application. The inquiry record itself is never mutated by the handoff.
type BookingGateway interface {
	PublishInquiryConverted(ctx context.Context, inquiry entities.Inquiry) error
}

type NumberFactory interface {
	InquiryNumber(at time.Time, existing int64) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
