// Package sqlite implements the domain repositories on top of SQLite.
// Posts embed their comment sequence as a JSON array column, so every
// post mutation, including comment appends, is a single-row write that
// SQLite serializes on its own.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/repository/sqlite/migrations"
)

// DB aggregates the SQLite-backed repositories behind one connection.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Single connection keeps all writes serialized.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending migrations from the embedded filesystem.
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.SqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the SQLite-backed user repository.
func (db *DB) Users() domain.UserRepository {
	return &UserRepository{db: db.SqlDB}
}

// Categories returns the SQLite-backed category repository.
func (db *DB) Categories() domain.CategoryRepository {
	return &CategoryRepository{db: db.SqlDB}
}

// Posts returns the SQLite-backed post repository.
func (db *DB) Posts() domain.PostRepository {
	return &PostRepository{db: db.SqlDB}
}

// isUniqueConstraintError reports whether err is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && !errors.Is(err, sql.ErrNoRows) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyError reports whether err is a SQLite foreign key violation.
func isForeignKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
