package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *sqlite.DB) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     "writer",
		Email:        "writer@example.com",
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *sqlite.DB) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: "General", Slug: "general"}
	if err := db.Categories().Create(context.Background(), category); err != nil {
		t.Fatalf("Create category: %v", err)
	}
	return category
}
