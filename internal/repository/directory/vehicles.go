package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/inquiry"
)

type Vehicles struct {
	querier Querier
}

func NewVehicles(querier Querier) *Vehicles {
	return &Vehicles{
		querier: querier,
	}
}

func (r *Vehicles) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := `
		SELECT id, number, vehicle_type
		FROM vehicles
		ORDER BY number`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle directory getall error: %w", err)
	}
	defer rows.Close()

	vehicles := make([]entities.Vehicle, 0, 32)
	for rows.Next() {
		var vehicle entities.Vehicle
		err := rows.Scan(&vehicle.ID, &vehicle.Number, &vehicle.VehicleType)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle directory getall error: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle directory getall error: %w", err)
	}

	return vehicles, nil
}

func (r *Vehicles) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	query := `
		SELECT id, number, vehicle_type
		FROM vehicles
		WHERE id = $1`

	var vehicle entities.Vehicle
	err := r.querier.QueryRow(ctx, query, id).Scan(&vehicle.ID, &vehicle.Number, &vehicle.VehicleType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inquiry.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle directory getbyid error: %w", err)
	}

	return &vehicle, nil
}
