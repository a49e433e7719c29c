package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Entry, error)
	Move(ctx context.Context, userID, entryID, categoryID uuid.UUID) (*domain.Entry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type listRepo interface {
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides entry operations.
type Service struct {
	entries    entryRepo
	categories categoryRepo
	lists      listRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Entry service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	categories categoryRepo,
	lists listRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		entries:    entries,
		categories: categories,
		lists:      lists,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "entry"),
		now:        time.Now,
	}
}
