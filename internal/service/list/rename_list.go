package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// RenameList changes a list's name. Renaming to the current name writes nothing.
func (s *Service) RenameList(ctx context.Context, input RenameListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	var updated *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.lists.GetByID(txCtx, userID, input.ListID)
		if getErr != nil {
			return fmt.Errorf("get list: %w", getErr)
		}
		if old.Name == name {
			updated = old
			return nil
		}

		var renameErr error
		updated, renameErr = s.lists.Rename(txCtx, userID, input.ListID, name)
		if renameErr != nil {
			return fmt.Errorf("rename list: %w", renameErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeList,
			EntityID:   &input.ListID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"name": map[string]any{"old": old.Name, "new": name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "list renamed",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
	)
	return updated, nil
}
