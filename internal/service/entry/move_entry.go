package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// MoveEntry reassigns an entry to another category of the same user.
// Moving to the current category returns the entry unchanged without writing.
func (s *Service) MoveEntry(ctx context.Context, input MoveEntryInput) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		moved *domain.Entry
		from  = input.CategoryID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByID(txCtx, userID, input.EntryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}
		if current.CategoryID == input.CategoryID {
			moved = current
			return nil
		}
		from = current.CategoryID

		if _, err := s.categories.GetByID(txCtx, userID, input.CategoryID); err != nil {
			return fmt.Errorf("get target category: %w", err)
		}

		moved, err = s.entries.Move(txCtx, userID, input.EntryID, input.CategoryID)
		if err != nil {
			return fmt.Errorf("move entry: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   &input.EntryID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"category_id": map[string]any{"old": current.CategoryID, "new": input.CategoryID},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if from != input.CategoryID {
		s.log.InfoContext(ctx, "entry moved",
			slog.String("user_id", userID.String()),
			slog.String("entry_id", input.EntryID.String()),
			slog.String("from", from.String()),
			slog.String("to", input.CategoryID.String()),
		)
	}
	return moved, nil
}
