package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/pod"
)

type Staff struct {
	querier Querier
}

func NewStaff(querier Querier) *Staff {
	return &Staff{
		querier: querier,
	}
}

func (r *Staff) GetByID(ctx context.Context, id string) (*entities.Staff, error) {
	query := `
		SELECT id, name, mobile
		FROM staff
		WHERE id = $1`

	var staff entities.Staff
	err := r.querier.QueryRow(ctx, query, id).Scan(&staff.ID, &staff.Name, &staff.Mobile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pod.ErrStaffNotFound
		}
		return nil, fmt.Errorf("unexpected staff directory getbyid error: %w", err)
	}

	return &staff, nil
}
