package handlers

import (
	"net/http"

	"github.com/venture-studio/engine/internal/api/middleware"
	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/repository"
)

type DashboardHandler struct {
	stats repository.StatsRepository
}

func NewDashboardHandler(stats repository.StatsRepository) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	stats, err := h.stats.DashboardStats(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(stats))
}
