package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

type listRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error)
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.List, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Rename(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.List, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxListsPerUser caps how many lists one account may hold.
const MaxListsPerUser = 50

// Service provides list management operations.
type Service struct {
	lists listRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new List service.
func NewService(log *slog.Logger, lists listRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		lists: lists,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "list"),
	}
}
