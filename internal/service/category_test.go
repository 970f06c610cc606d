package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

func TestCategoryService_Create(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	ctx := context.Background()

	category, err := categories.Create(ctx, "Tech News!", "all the news")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if category.ID == 0 {
		t.Error("expected category ID to be set")
	}
	if category.Slug != "tech-news" {
		t.Errorf("expected slug 'tech-news', got %q", category.Slug)
	}
	if category.Description != "all the news" {
		t.Errorf("unexpected description %q", category.Description)
	}
}

func TestCategoryService_Create_SlugCollision(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	ctx := context.Background()

	if _, err := categories.Create(ctx, "Tech News!", ""); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	// A different name that derives the same slug is rejected.
	_, err := categories.Create(ctx, "Tech News", "")
	if !errors.Is(err, domain.ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())

	_, err := categories.Create(context.Background(), "   ", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryService_Create_UnsluggableName(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())

	// Punctuation-only names produce an empty slug.
	_, err := categories.Create(context.Background(), "!!!", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryService_Create_TooLong(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	ctx := context.Background()

	_, err := categories.Create(ctx, strings.Repeat("a", 51), "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long name, got %v", err)
	}

	_, err = categories.Create(ctx, "Fine", strings.Repeat("d", 201))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long description, got %v", err)
	}
}

func TestCategoryService_ListAll(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	ctx := context.Background()

	for _, name := range []string{"Zebra", "Alpha"} {
		if _, err := categories.Create(ctx, name, ""); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := categories.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(all))
	}
	if all[0].Name != "Alpha" || all[1].Name != "Zebra" {
		t.Errorf("expected name order, got %q then %q", all[0].Name, all[1].Name)
	}
}
