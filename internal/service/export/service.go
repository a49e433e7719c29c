// Package export renders a list's accomplishments as a markdown brag doc
// or as the HTML report used for email sharing.
package export

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

type listRepo interface {
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error)
}

type categoryRepo interface {
	ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Category, error)
}

type entryRepo interface {
	ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Entry, error)
}

// Service builds exports of a user's list.
type Service struct {
	lists      listRepo
	categories categoryRepo
	entries    entryRepo
	md         goldmark.Markdown
	log        *slog.Logger
}

// NewService creates a new Export service.
func NewService(log *slog.Logger, lists listRepo, categories categoryRepo, entries entryRepo) *Service {
	return &Service{
		lists:      lists,
		categories: categories,
		entries:    entries,
		md:         goldmark.New(),
		log:        log.With("service", "export"),
	}
}
