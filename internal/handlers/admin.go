package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jobboard/apiserver/internal/services"
)

const (
	// OperatorTokenHeader carries the pre-shared operator secret that
	// gates admin provisioning over HTTP.
	OperatorTokenHeader = "X-Operator-Token"

	minAdminPasswordLength = 8
)

// AdminHandler provides the ops-only admin provisioning endpoint.
type AdminHandler struct {
	credentials   *services.CredentialService
	operatorToken string
	logger        *slog.Logger
}

func NewAdminHandler(credentials *services.CredentialService, operatorToken string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		credentials:   credentials,
		operatorToken: operatorToken,
		logger:        logger,
	}
}

// AdminRouter registers the admin provisioning route on the given router.
func AdminRouter(r chi.Router, credentials *services.CredentialService, operatorToken string, logger *slog.Logger) {
	handler := NewAdminHandler(credentials, operatorToken, logger)

	r.Post("/create-admin", handler.CreateAdmin)
}

// CreateAdmin provisions an Admin account. The endpoint requires the
// pre-shared operator token and stays disabled when none is configured.
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req CreateAdminRequest
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
			Message: "Password must be at least 8 characters",
			Valid:   func() bool { return len(req.Password) >= minAdminPasswordLength },
		},
	})
	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	err := h.credentials.CreateAdmin(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		writeInternalError(w, h.logger, "create-admin", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Admin user created successfully"})
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.operatorToken == "" {
		return false
	}
	provided := r.Header.Get(OperatorTokenHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.operatorToken)) == 1
}

type CreateAdminRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
