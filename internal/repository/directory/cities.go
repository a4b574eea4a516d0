package directory

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Cities struct {
	querier Querier
}

func NewCities(querier Querier) *Cities {
	return &Cities{
		querier: querier,
	}
}

func (r *Cities) GetAll(ctx context.Context) ([]entities.City, error) {
	query := `
		SELECT id, name, state
		FROM cities
		ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected city directory getall error: %w", err)
	}
	defer rows.Close()

	cities := make([]entities.City, 0, 64)
	for rows.Next() {
		var city entities.City
		err := rows.Scan(&city.ID, &city.Name, &city.State)
		if err != nil {
			return nil, fmt.Errorf("unexpected city directory getall error: %w", err)
		}
		cities = append(cities, city)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected city directory getall error: %w", err)
	}

	return cities, nil
}
