package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/slug"
)

const (
	maxCategoryNameLen = 50
	maxDescriptionLen  = 200
)

// CategoryService handles category listing and creation.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListAll returns all categories sorted by name ascending.
func (s *CategoryService) ListAll(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListAll(ctx)
}

// Create derives the slug from the name and persists the category.
// Fails with domain.ErrDuplicateCategory when either the name or the
// derived slug collides with an existing category.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if len(name) > maxCategoryNameLen {
		return nil, fmt.Errorf("%w: name must be %d characters or fewer", domain.ErrInvalidInput, maxCategoryNameLen)
	}
	if len(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be %d characters or fewer", domain.ErrInvalidInput, maxDescriptionLen)
	}

	derived := slug.Make(name)
	if derived == "" {
		return nil, fmt.Errorf("%w: name must contain letters, digits, or spaces", domain.ErrInvalidInput)
	}

	category := &domain.Category{
		Name:        name,
		Description: description,
		Slug:        derived,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
