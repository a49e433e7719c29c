package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// DeleteCategory removes a category and, by cascade, its entries.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if categoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.categories.GetByID(txCtx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		if err := s.categories.Delete(txCtx, userID, categoryID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &categoryID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"name": map[string]any{"old": old.Name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)
	return nil
}
