package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// DeleteList removes a list with its categories and entries.
// The user's last remaining list cannot be deleted (ErrLastList).
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if listID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
	}

	var name string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, getErr := s.lists.GetByID(txCtx, userID, listID)
		if getErr != nil {
			return fmt.Errorf("get list: %w", getErr)
		}
		name = l.Name

		count, countErr := s.lists.Count(txCtx, userID)
		if countErr != nil {
			return fmt.Errorf("count lists: %w", countErr)
		}
		if count <= 1 {
			return domain.ErrLastList
		}

		if deleteErr := s.lists.Delete(txCtx, userID, listID); deleteErr != nil {
			return fmt.Errorf("delete list: %w", deleteErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeList,
			EntityID:   &listID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"name": map[string]any{"old": l.Name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
		slog.String("name", name),
	)
	return nil
}
