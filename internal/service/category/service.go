package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Category, error)
	Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*domain.Category, error)
	Reorder(ctx context.Context, userID, listID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
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

// MaxCategoriesPerList caps the categories of a single list.
const MaxCategoriesPerList = 100

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	lists      listRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	lists listRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		lists:      lists,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}
