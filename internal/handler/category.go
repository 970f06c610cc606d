package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// CategoryHandler handles category listing and creation.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// HandleList returns all categories sorted by name.
// GET /api/categories
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListAll(r.Context())
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTOs(categories))
}

// HandleCreate creates a new category with a derived slug.
// POST /api/categories (auth required)
// Request:  {"name":"...","description":"..."}
// Response: 201 CategoryDTO or 400 {"errors":[...]}
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	var v validator
	v.require("name", req.Name, "Name is required")
	if !v.ok() {
		writeErrors(w, http.StatusBadRequest, v.errs)
		return
	}

	category, err := h.categories.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Category name or slug must be unique"}})
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: err.Error(), Path: "name"}})
			return
		}
		slog.Error("create category", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryDTO(category))
}
