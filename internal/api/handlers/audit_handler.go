package handlers

import (
	"net/http"
	"strconv"

	"github.com/venture-studio/engine/internal/api/middleware"
	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/repository"
)

type AuditHandler struct {
	audit repository.AuditRepository
}

func NewAuditHandler(audit repository.AuditRepository) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Trail returns the caller's audit entries, most recent first, capped at 50.
func (h *AuditHandler) Trail(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	entries, err := h.audit.ListByUser(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(entries))
}
