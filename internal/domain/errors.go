package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUser     = errors.New("username or email already exists")
	ErrDuplicateCategory = errors.New("category name or slug already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnsupportedFile   = errors.New("unsupported file type")
)
