package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/internal/services"
)

type AuthHandler struct {
	auth  services.AuthService
	audit services.AuditService
}

func NewAuthHandler(auth services.AuthService, audit services.AuditService) *AuthHandler {
	return &AuthHandler{auth: auth, audit: audit}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), user.ID, "user.register", "account created")

	writeJSON(w, http.StatusOK, types.OK(authPayload(user, token)))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), user.ID, "user.login", "session issued")

	writeJSON(w, http.StatusOK, types.OK(authPayload(user, token)))
}

// authPayload is the shared response shape of register and login. The user
// model excludes the password hash via its json tags.
func authPayload(u *models.User, token string) map[string]any {
	return map[string]any{
		"user":  u,
		"token": token,
	}
}
