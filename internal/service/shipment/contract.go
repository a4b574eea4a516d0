//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"service/internal/entities"
)

type BookingRepository interface {
	GetAll(ctx context.Context) ([]entities.Booking, error)
	GetByID(ctx context.Context, id string) (*entities.Booking, error)
}

type ManifestRepository interface {
	GetAll(ctx context.Context) ([]entities.Manifest, error)
}

type TripRepository interface {
	GetAll(ctx context.Context) ([]entities.Trip, error)
}

type PODRepository interface {
	GetAll(ctx context.Context) ([]entities.ProofOfDelivery, error)
}

type BranchDirectory interface {
	GetAll(ctx context.Context) ([]entities.Branch, error)
}

type CityDirectory interface {
	GetAll(ctx context.Context) ([]entities.City, error)
}

type VehicleDirectory interface {
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
}
