package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/service/export"
	"github.com/heartmarshall/tasktracker-backend/internal/service/share"
)

type exportService interface {
	Markdown(ctx context.Context, listID uuid.UUID) (string, error)
}

type shareService interface {
	Share(ctx context.Context, input share.ShareInput) error
}

// ReportHandler serves the brag-doc download and email sharing.
type ReportHandler struct {
	export exportService
	share  shareService
	log    *slog.Logger
	now    func() time.Time
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(exp exportService, sh shareService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{export: exp, share: sh, log: logger.With("handler", "report"), now: time.Now}
}

type shareRequest struct {
	// To is a comma-separated recipient list.
	To      string     `json:"to"`
	Subject string     `json:"subject"`
	HTML    string     `json:"html"`
	ListID  *uuid.UUID `json:"listId"`
}

// Markdown handles GET /api/lists/{id}/export.md as a file download.
func (h *ReportHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.export.Markdown(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(h.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// Share handles POST /api/share.
func (h *ReportHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.share.Share(r.Context(), share.ShareInput{
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
		ListID:  req.ListID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
