package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// CreateCategory appends a category to the end of a list.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetByID(txCtx, userID, input.ListID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		existing, err := s.categories.ListByList(txCtx, userID, input.ListID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if len(existing) >= MaxCategoriesPerList {
			return domain.NewValidationError("categories", "limit reached (max 100)")
		}

		created, err = s.categories.Create(txCtx, userID, input.ListID, name)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":    map[string]any{"new": name},
				"list_id": map[string]any{"new": input.ListID},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.Int("sort_order", created.SortOrder),
	)
	return created, nil
}
