package directory

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Branches struct {
	querier Querier
}

func NewBranches(querier Querier) *Branches {
	return &Branches{
		querier: querier,
	}
}

func (r *Branches) GetAll(ctx context.Context) ([]entities.Branch, error) {
	query := `
		SELECT id, code, name, city, state
		FROM branches
		ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected branch directory getall error: %w", err)
	}
	defer rows.Close()

	branches := make([]entities.Branch, 0, 16)
	for rows.Next() {
		var branch entities.Branch
		err := rows.Scan(&branch.ID, &branch.Code, &branch.Name, &branch.City, &branch.State)
		if err != nil {
			return nil, fmt.Errorf("unexpected branch directory getall error: %w", err)
		}
		branches = append(branches, branch)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected branch directory getall error: %w", err)
	}

	return branches, nil
}
