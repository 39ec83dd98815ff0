package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/api/middleware"
	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/internal/repository"
	"github.com/venture-studio/engine/internal/services"
)

type DocumentsHandler struct {
	documents  repository.DocumentRepository
	signatures repository.SignatureRepository
	audit      services.AuditService
}

func NewDocumentsHandler(documents repository.DocumentRepository, signatures repository.SignatureRepository, audit services.AuditService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents, signatures: signatures, audit: audit}
}

func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	docs, err := h.documents.ListByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(docs))
}

func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	d := models.Document{
		ID:        uuid.New(),
		UserID:    middleware.GetUserID(r.Context()),
		Name:      req.Name,
		Type:      req.Type,
		Content:   req.Content,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if d.Status == "" {
		d.Status = "draft"
	}

	if err := h.documents.Create(r.Context(), &d); err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), d.UserID, "document.create", fmt.Sprintf("document %q created", d.Name))

	writeJSON(w, http.StatusCreated, types.OK(d))
}

func (h *DocumentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}

	userID := middleware.GetUserID(r.Context())
	d, err := h.documents.GetByID(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(d))
}

// ListSignatures returns signatures on one of the caller's documents.
// Ownership is checked first so signature existence leaks nothing about
// other users' documents.
func (h *DocumentsHandler) ListSignatures(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}

	userID := middleware.GetUserID(r.Context())
	if _, err := h.documents.GetByID(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	sigs, err := h.signatures.ListByDocument(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(sigs))
}

func (h *DocumentsHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req types.SignatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}

	userID := middleware.GetUserID(r.Context())
	if _, err := h.documents.GetByID(r.Context(), userID, docID); err != nil {
		writeError(w, err)
		return
	}

	s := models.Signature{
		ID:            uuid.New(),
		UserID:        userID,
		DocumentID:    docID,
		SignatureData: req.SignatureData,
		SignedAt:      time.Now().UTC(),
	}
	if err := h.signatures.Create(r.Context(), &s); err != nil {
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), userID, "document.sign", fmt.Sprintf("document %s signed", docID))

	writeJSON(w, http.StatusCreated, types.OK(s))
}
