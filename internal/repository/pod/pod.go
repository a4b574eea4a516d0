package pod

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/pod"
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

const podColumns = `id, number, booking_id, booking_lr, delivered_at, receiver_name,
		receiver_mobile, receiver_id_proof, pieces_delivered, condition,
		dispatch_status, dispatch_mode, courier_name, tracking_number,
		courier_receiver_name, courier_receiver_number, staff_id, staff_name,
		created_at, updated_at`

func (r *Repository) GetAll(ctx context.Context) ([]entities.ProofOfDelivery, error) {
	query := `
		SELECT ` + podColumns + `
		FROM pods
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected pod repository getall error: %w", err)
	}
	defer rows.Close()

	podModels := make([]PodDB, 0, 32)
	for rows.Next() {
		var podModel PodDB
		err := scanPod(rows, &podModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected pod repository getall error: %w", err)
		}
		podModels = append(podModels, podModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected pod repository getall error: %w", err)
	}

	return ToDomainList(podModels), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM pods`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected pod repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) Create(ctx context.Context, podEntity entities.ProofOfDelivery) (string, error) {
	podModel := FromDomain(&podEntity)

	query := `
		INSERT INTO pods (number, booking_id, booking_lr, delivered_at, receiver_name,
			receiver_mobile, receiver_id_proof, pieces_delivered, condition,
			dispatch_status, dispatch_mode, courier_name, tracking_number,
			courier_receiver_name, courier_receiver_number, staff_id, staff_name,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		podModel.Number,
		podModel.BookingID,
		podModel.BookingLR,
		podModel.DeliveredAt,
		podModel.ReceiverName,
		podModel.ReceiverMobile,
		podModel.ReceiverIDProof,
		podModel.PiecesDelivered,
		podModel.Condition,
		podModel.DispatchStatus,
		podModel.DispatchMode,
		podModel.CourierName,
		podModel.TrackingNumber,
		podModel.CourierReceiverName,
		podModel.CourierReceiverNumber,
		podModel.StaffID,
		podModel.StaffName,
		podModel.CreatedAt,
		podModel.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", pod.ErrPODAlreadyExists
		}
		return "", fmt.Errorf("unexpected pod repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, podEntity entities.ProofOfDelivery) (*entities.ProofOfDelivery, error) {
	podModel := FromDomain(&podEntity)

	builder := qb.
		Update("pods").
		Set("delivered_at", podModel.DeliveredAt).
		Set("receiver_name", podModel.ReceiverName).
		Set("receiver_mobile", podModel.ReceiverMobile).
		Set("receiver_id_proof", podModel.ReceiverIDProof).
		Set("pieces_delivered", podModel.PiecesDelivered).
		Set("condition", podModel.Condition).
		Set("dispatch_status", podModel.DispatchStatus).
		Set("dispatch_mode", podModel.DispatchMode).
		Set("courier_name", podModel.CourierName).
		Set("tracking_number", podModel.TrackingNumber).
		Set("courier_receiver_name", podModel.CourierReceiverName).
		Set("courier_receiver_number", podModel.CourierReceiverNumber).
		Set("staff_id", podModel.StaffID).
		Set("staff_name", podModel.StaffName).
		Set("updated_at", podModel.UpdatedAt).
		Where(sq.Eq{"id": podModel.ID}).
		Suffix("RETURNING " + podColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pod repository update error: %w", err)
	}

	var updated PodDB
	err = scanPod(r.querier.QueryRow(ctx, query, args...), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pod.ErrPODNotFound
		}
		return nil, fmt.Errorf("unexpected pod repository update error: %w", err)
	}

	return ToDomain(&updated), nil
}

func scanPod(row pgx.Row, podModel *PodDB) error {
	return row.Scan(
		&podModel.ID,
		&podModel.Number,
		&podModel.BookingID,
		&podModel.BookingLR,
		&podModel.DeliveredAt,
		&podModel.ReceiverName,
		&podModel.ReceiverMobile,
		&podModel.ReceiverIDProof,
		&podModel.PiecesDelivered,
		&podModel.Condition,
		&podModel.DispatchStatus,
		&podModel.DispatchMode,
		&podModel.CourierName,
		&podModel.TrackingNumber,
		&podModel.CourierReceiverName,
		&podModel.CourierReceiverNumber,
		&podModel.StaffID,
		&podModel.StaffName,
		&podModel.CreatedAt,
		&podModel.UpdatedAt,
	)
}
