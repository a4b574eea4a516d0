package trip

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Trip, error) {
	query := `
		SELECT id, manifest_id, manifest_number, vehicle_id, vehicle_number, driver_name, created_at
		FROM trips
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 32)
	for rows.Next() {
		var tripModel TripDB
		err := rows.Scan(
			&tripModel.ID,
			&tripModel.ManifestID,
			&tripModel.ManifestNumber,
			&tripModel.VehicleID,
			&tripModel.VehicleNumber,
			&tripModel.DriverName,
			&tripModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	return ToDomainList(tripModels), nil
}
