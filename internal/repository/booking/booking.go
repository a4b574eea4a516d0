package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/service/shipment"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository reads booking (LR) records. Bookings are owned by the external
// booking application; the only write this service performs is the one-shot
// pod_uploaded flag.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const bookingColumns = `id, lr_number, branch_id, origin_city_id, destination_city_id,
		pieces, weight, mode, consignor, consignee, pod_uploaded, created_at`

func (r *Repository) GetAll(ctx context.Context) ([]entities.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository getall error: %w", err)
	}
	defer rows.Close()

	bookingModels := make([]BookingDB, 0, 64)
	for rows.Next() {
		var bookingModel BookingDB
		err := scanBooking(rows, &bookingModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository getall error: %w", err)
		}
		bookingModels = append(bookingModels, bookingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository getall error: %w", err)
	}

	return ToDomainList(bookingModels)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1`

	var bookingModel BookingDB
	err := scanBooking(r.querier.QueryRow(ctx, query, id), &bookingModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(&bookingModel)
}

func (r *Repository) MarkPODUploaded(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET pod_uploaded = TRUE
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected booking repository mark pod uploaded error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrBookingNotFound
	}

	return nil
}

func scanBooking(row pgx.Row, bookingModel *BookingDB) error {
	return row.Scan(
		&bookingModel.ID,
		&bookingModel.LRNumber,
		&bookingModel.BranchID,
		&bookingModel.OriginCityID,
		&bookingModel.DestinationCityID,
		&bookingModel.Pieces,
		&bookingModel.Weight,
		&bookingModel.Mode,
		&bookingModel.Consignor,
		&bookingModel.Consignee,
		&bookingModel.PODUploaded,
		&bookingModel.CreatedAt,
	)
}
