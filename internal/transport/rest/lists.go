package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/list"
)

type listService interface {
	ListLists(ctx context.Context) ([]*domain.List, error)
	CreateList(ctx context.Context, input list.CreateListInput) (*domain.List, error)
	RenameList(ctx context.Context, input list.RenameListInput) (*domain.List, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
}

// ListHandler serves /api/lists.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

type nameRequest struct {
	Name string `json:"name"`
}

type listResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

func toListResponse(l *domain.List) listResponse {
	return listResponse{ID: l.ID, Name: l.Name, SortOrder: l.SortOrder, CreatedAt: l.CreatedAt}
}

// List handles GET /api/lists.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		resp = append(resp, toListResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.CreateList(r.Context(), list.CreateListInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(l))
}

// Rename handles PATCH /api/lists/{id}.
func (h *ListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.RenameList(r.Context(), list.RenameListInput{ListID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(l))
}

// Delete handles DELETE /api/lists/{id}. Deleting the last list answers 409.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
