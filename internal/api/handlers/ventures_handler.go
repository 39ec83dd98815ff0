package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/api/middleware"
	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/internal/repository"
	"github.com/venture-studio/engine/internal/services"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type VenturesHandler struct {
	ventures repository.VentureRepository
	stats    repository.StatsRepository
	audit    services.AuditService
}

func NewVenturesHandler(ventures repository.VentureRepository, stats repository.StatsRepository, audit services.AuditService) *VenturesHandler {
	return &VenturesHandler{ventures: ventures, stats: stats, audit: audit}
}

func (h *VenturesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	items, err := h.ventures.ListByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(items))
}

func (h *VenturesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.VentureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	v := models.Venture{
		ID:          uuid.New(),
		UserID:      middleware.GetUserID(r.Context()),
		Name:        req.Name,
		Description: req.Description,
		Stage:       req.Stage,
		Status:      req.Status,
		Progress:    req.Progress,
		Valuation:   req.Valuation,
		Industry:    req.Industry,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if v.Stage == "" {
		v.Stage = models.StageDiscovery
	}
	if v.Status == "" {
		v.Status = models.StatusActive
	}

	if err := h.ventures.Create(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), v.UserID, "venture.create", fmt.Sprintf("venture %q created", v.Name))

	writeJSON(w, http.StatusCreated, types.OK(v))
}

// Update is a full-row overwrite of an owned venture.
func (h *VenturesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid venture id")
		return
	}

	var req types.VentureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())
	v, err := h.ventures.GetByID(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	v.Name = req.Name
	v.Description = req.Description
	if req.Stage != "" {
		v.Stage = req.Stage
	}
	if req.Status != "" {
		v.Status = req.Status
	}
	v.Progress = req.Progress
	v.Valuation = req.Valuation
	v.Industry = req.Industry
	v.IsPublic = req.IsPublic
	v.UpdatedAt = time.Now().UTC()

	if err := h.ventures.Update(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), userID, "venture.update", fmt.Sprintf("venture %q updated", v.Name))

	writeJSON(w, http.StatusOK, types.OK(v))
}

func (h *VenturesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid venture id")
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := h.ventures.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), userID, "venture.delete", fmt.Sprintf("venture %s deleted", id))

	writeJSON(w, http.StatusOK, types.OK(map[string]string{"deleted": id.String()}))
}

// Analytics returns the platform-wide composite. Not scoped to the caller.
func (h *VenturesHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.stats.VentureAnalytics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(a))
}
