package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jobboard/apiserver/internal/services"
	"github.com/jobboard/apiserver/types"
)

const minPasswordLength = 6

// AuthHandler provides the public registration and login endpoints.
type AuthHandler struct {
	credentials *services.CredentialService
	logger      *slog.Logger
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(credentials *services.CredentialService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		logger:      logger,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, credentials *services.CredentialService, logger *slog.Logger) {
	handler := NewAuthHandler(credentials, logger)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
}

// Register creates a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	errs := runValidation([]FieldRule{
		{
			Path:    "email",
			Message: "Valid email is required",
			Valid:   func() bool { return isEmail(req.Email) },
		},
		{
			Path:    "password",
			Message: "Password must be at least 6 characters",
			Valid:   func() bool { return len(req.Password) >= minPasswordLength },
		},
		{
			Path:    "role",
			Message: "Invalid role",
			Valid: func() bool {
				return req.Role == "" || types.ValidRegistrationRole(types.Role(req.Role))
			},
		},
	})
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	err := h.credentials.Register(r.Context(), req.Email, req.Password, types.Role(req.Role))
	if err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		writeInternalError(w, h.logger, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	errs := runValidation([]FieldRule{
		{
			Path:    "email",
			Message: "Valid email is required",
			Valid:   func() bool { return isEmail(req.Email) },
		},
		{
			Path:    "password",
			Message: "Password is required",
			Valid:   func() bool { return req.Password != "" },
		},
	})
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	token, account, err := h.credentials.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		writeInternalError(w, h.logger, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: account})
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  types.PublicAccount `json:"user"`
}
