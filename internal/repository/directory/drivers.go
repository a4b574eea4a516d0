package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/inquiry"
)

type Drivers struct {
	querier Querier
}

func NewDrivers(querier Querier) *Drivers {
	return &Drivers{
		querier: querier,
	}
}

func (r *Drivers) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	query := `
		SELECT id, name, mobile, license_number
		FROM drivers
		WHERE id = $1`

	var driver entities.Driver
	err := r.querier.QueryRow(ctx, query, id).
		Scan(&driver.ID, &driver.Name, &driver.Mobile, &driver.LicenseNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inquiry.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver directory getbyid error: %w", err)
	}

	return &driver, nil
}
