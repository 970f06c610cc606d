package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository using SQLite.
type CategoryRepository struct {
	db *sql.DB
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, description, slug, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		category.Name, category.Description, category.Slug, now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	category.ID = id
	category.CreatedAt = now
	category.UpdatedAt = now
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, slug, created_at, updated_at
		 FROM categories WHERE id = ?`, id,
	).Scan(&category.ID, &category.Name, &category.Description, &category.Slug,
		&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query category by id: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, slug, created_at, updated_at
		 FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
