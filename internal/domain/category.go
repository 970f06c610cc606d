package domain

import (
	"context"
	"time"
)

// Category groups posts under a name and a URL-friendly slug.
// The slug is always derived from the name; it is never set directly.
type Category struct {
	ID          int64
	Name        string
	Description string
	Slug        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	// ListAll returns every category sorted by name ascending.
	ListAll(ctx context.Context) ([]Category, error)
}
