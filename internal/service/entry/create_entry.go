package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// CreateEntry records an accomplishment in a category.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := domain.TruncateDay(s.now().UTC())
	if input.Date != "" {
		date, _ = domain.ParseDate(input.Date)
	}
	content := strings.TrimSpace(input.Content)

	var created *domain.Entry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.entries.Create(txCtx, &domain.Entry{
			UserID:     userID,
			CategoryID: input.CategoryID,
			Content:    content,
			EntryDate:  date,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"category_id": map[string]any{"new": input.CategoryID},
				"entry_date":  map[string]any{"new": created.Day()},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("entry_date", created.Day()),
	)
	return created, nil
}
