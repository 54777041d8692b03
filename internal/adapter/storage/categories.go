package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/port"
)

var _ port.CategoriesStorage = (*CategoriesRepository)(nil)

type CategoriesRepository struct {
	sqldb sqldb
}

func NewCategoriesRepository(sqldb sqldb) CategoriesRepository {
	return CategoriesRepository{sqldb}
}

// ListActive returns the categories shown in default listings.
// Deactivated categories stay out of the list but keep their id for
// historical products.
func (r CategoriesRepository) ListActive(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.ListActive"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, description, active, created_at, updated_at
		FROM categories
		WHERE active
		ORDER BY name;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		var c domain.Category
		var updatedAt sql.NullTime
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active,
			&c.CreatedAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if updatedAt.Valid {
			c.UpdatedAt = &updatedAt.Time
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}
