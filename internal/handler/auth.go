package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister creates a new account and issues a token.
// POST /api/auth/register
// Request:  {"username":"...","email":"...","password":"..."}
// Response: 201 {"user":{...},"token":"..."} or 400 {"errors":[...]}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	var v validator
	v.require("username", req.Username, "Username is required")
	v.email("email", req.Email)
	v.minLen("password", req.Password, 6)
	if !v.ok() {
		writeErrors(w, http.StatusBadRequest, v.errs)
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Username or email already exists"}})
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  toUserDTO(user),
		"token": token,
	})
}

// HandleLogin verifies credentials and issues a token.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"user":{...},"token":"..."} or 400 {"errors":[...]}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	var v validator
	v.email("email", req.Email)
	v.require("password", req.Password, "Password is required")
	if !v.ok() {
		writeErrors(w, http.StatusBadRequest, v.errs)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid credentials"}})
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  toUserDTO(user),
		"token": token,
	})
}
