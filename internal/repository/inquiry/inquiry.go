package inquiry

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/service/inquiry"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

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

const inquiryColumns = `id, number, vehicle_type, weight, container_type, origin_city_id,
		destination_city_id, freight_amount, client_id, branch_id, status,
		assigned_vehicle_id, assigned_vehicle_number, assigned_driver_id,
		assigned_driver_name, assigned_driver_mobile, booking_id,
		confirmed_at, confirmed_by, vehicle_assigned_at, vehicle_assigned_by,
		order_confirmed_at, order_confirmed_by, cancelled_at, cancelled_by,
		cancel_reason, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, inquiryEntity entities.Inquiry) (string, error) {
	inquiryModel := FromDomain(&inquiryEntity)

	query := `
		INSERT INTO inquiries (number, vehicle_type, weight, container_type, origin_city_id,
			destination_city_id, freight_amount, client_id, branch_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		inquiryModel.Number,
		inquiryModel.VehicleType,
		inquiryModel.Weight,
		inquiryModel.ContainerType,
		inquiryModel.OriginCityID,
		inquiryModel.DestinationCityID,
		inquiryModel.FreightAmount,
		inquiryModel.ClientID,
		inquiryModel.BranchID,
		inquiryModel.Status,
		inquiryModel.CreatedAt,
		inquiryModel.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("unexpected inquiry repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE id = $1`

	var inquiryModel InquiryDB
	err := scanInquiry(r.querier.QueryRow(ctx, query, id), &inquiryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("unexpected inquiry repository getbyid error: %w", err)
	}

	return ToDomain(&inquiryModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected inquiry repository getall error: %w", err)
	}
	defer rows.Close()

	inquiryModels := make([]InquiryDB, 0, 32)
	for rows.Next() {
		var inquiryModel InquiryDB
		err := scanInquiry(rows, &inquiryModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected inquiry repository getall error: %w", err)
		}
		inquiryModels = append(inquiryModels, inquiryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected inquiry repository getall error: %w", err)
	}

	return ToDomainList(inquiryModels), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM inquiries`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected inquiry repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) Update(ctx context.Context, inquiryEntity entities.Inquiry) (*entities.Inquiry, error) {
	inquiryModel := FromDomain(&inquiryEntity)

	builder := qb.
		Update("inquiries").
		Set("status", inquiryModel.Status).
		Set("assigned_vehicle_id", inquiryModel.AssignedVehicleID).
		Set("assigned_vehicle_number", inquiryModel.AssignedVehicleNumber).
		Set("assigned_driver_id", inquiryModel.AssignedDriverID).
		Set("assigned_driver_name", inquiryModel.AssignedDriverName).
		Set("assigned_driver_mobile", inquiryModel.AssignedDriverMobile).
		Set("booking_id", inquiryModel.BookingID).
		Set("confirmed_at", inquiryModel.ConfirmedAt).
		Set("confirmed_by", inquiryModel.ConfirmedBy).
		Set("vehicle_assigned_at", inquiryModel.VehicleAssignedAt).
		Set("vehicle_assigned_by", inquiryModel.VehicleAssignedBy).
		Set("order_confirmed_at", inquiryModel.OrderConfirmedAt).
		Set("order_confirmed_by", inquiryModel.OrderConfirmedBy).
		Set("cancelled_at", inquiryModel.CancelledAt).
		Set("cancelled_by", inquiryModel.CancelledBy).
		Set("cancel_reason", inquiryModel.CancelReason).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": inquiryModel.ID}).
		Suffix("RETURNING " + inquiryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected inquiry repository update error: %w", err)
	}

	var updated InquiryDB
	err = scanInquiry(r.querier.QueryRow(ctx, query, args...), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("unexpected inquiry repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

func scanInquiry(row pgx.Row, inquiryModel *InquiryDB) error {
	return row.Scan(
		&inquiryModel.ID,
		&inquiryModel.Number,
		&inquiryModel.VehicleType,
		&inquiryModel.Weight,
		&inquiryModel.ContainerType,
		&inquiryModel.OriginCityID,
		&inquiryModel.DestinationCityID,
		&inquiryModel.FreightAmount,
		&inquiryModel.ClientID,
		&inquiryModel.BranchID,
		&inquiryModel.Status,
		&inquiryModel.AssignedVehicleID,
		&inquiryModel.AssignedVehicleNumber,
		&inquiryModel.AssignedDriverID,
		&inquiryModel.AssignedDriverName,
		&inquiryModel.AssignedDriverMobile,
		&inquiryModel.BookingID,
		&inquiryModel.ConfirmedAt,
		&inquiryModel.ConfirmedBy,
		&inquiryModel.VehicleAssignedAt,
		&inquiryModel.VehicleAssignedBy,
		&inquiryModel.OrderConfirmedAt,
		&inquiryModel.OrderConfirmedBy,
		&inquiryModel.CancelledAt,
		&inquiryModel.CancelledBy,
		&inquiryModel.CancelReason,
		&inquiryModel.CreatedAt,
		&inquiryModel.UpdatedAt,
	)
}
