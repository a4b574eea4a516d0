package manifest

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

// Repository reads manifest records. The booking list and per-LR receipts
// arrive as the raw jsonb imported from the source collection; converters
// normalize them before anything downstream sees a manifest.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Manifest, error) {
	query := `
		SELECT id, number, destination_branch_id, bookings, receipts, created_at
		FROM manifests
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected manifest repository getall error: %w", err)
	}
	defer rows.Close()

	manifestModels := make([]ManifestDB, 0, 32)
	for rows.Next() {
		var manifestModel ManifestDB
		err := rows.Scan(
			&manifestModel.ID,
			&manifestModel.Number,
			&manifestModel.DestinationBranchID,
			&manifestModel.Bookings,
			&manifestModel.Receipts,
			&manifestModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected manifest repository getall error: %w", err)
		}
		manifestModels = append(manifestModels, manifestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected manifest repository getall error: %w", err)
	}

	return ToDomainList(manifestModels)
}
