package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/entry"
)

type entryService interface {
	ListEntries(ctx context.Context, listID uuid.UUID) ([]*domain.Entry, error)
	CreateEntry(ctx context.Context, input entry.CreateEntryInput) (*domain.Entry, error)
	MoveEntry(ctx context.Context, input entry.MoveEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

// EntryHandler serves accomplishment entries.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type createEntryRequest struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Content    string    `json:"content"`
	// EntryDate is YYYY-MM-DD; empty means today.
	EntryDate string `json:"entryDate"`
}

type moveEntryRequest struct {
	CategoryID uuid.UUID `json:"categoryId"`
}

type entryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Content    string    `json:"content"`
	EntryDate  string    `json:"entryDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		CategoryID: e.CategoryID,
		Content:    e.Content,
		EntryDate:  e.Day(),
		CreatedAt:  e.CreatedAt,
	}
}

// List handles GET /api/lists/{id}/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/lists/{id}/entries. The list id in the path is
// informational; ownership is checked through the category.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathUUID(w, r, "id"); !ok {
		return
	}
	var req createEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEntry(r.Context(), entry.CreateEntryInput{
		CategoryID: req.CategoryID,
		Content:    req.Content,
		Date:       req.EntryDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(e))
}

// Move handles PATCH /api/entries/{id}.
func (h *EntryHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req moveEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.MoveEntry(r.Context(), entry.MoveEntryInput{EntryID: id, CategoryID: req.CategoryID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(e))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
