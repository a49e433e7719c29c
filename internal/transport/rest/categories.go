package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/category"
)

type categoryService interface {
	ListCategories(ctx context.Context, listID uuid.UUID) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	RenameCategory(ctx context.Context, input category.RenameCategoryInput) (*domain.Category, error)
	ReorderCategories(ctx context.Context, input category.ReorderCategoriesInput) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryHandler serves categories nested under a list and by id.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"listId"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type reorderRequest struct {
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

func toCategoryResponses(cats []*domain.Category) []categoryResponse {
	resp := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, toCategoryResponse(c))
	}
	return resp
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, ListID: c.ListID, Name: c.Name, SortOrder: c.SortOrder, CreatedAt: c.CreatedAt}
}

// List handles GET /api/lists/{id}/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	cats, err := h.svc.ListCategories(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// Create handles POST /api/lists/{id}/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), category.CreateCategoryInput{ListID: listID, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Reorder handles PUT /api/lists/{id}/categories/order.
func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cats, err := h.svc.ReorderCategories(r.Context(), category.ReorderCategoriesInput{
		ListID:      listID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// Rename handles PATCH /api/categories/{id}.
func (h *CategoryHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.RenameCategory(r.Context(), category.RenameCategoryInput{CategoryID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /api/categories/{id}. Entries of the category go with it.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
