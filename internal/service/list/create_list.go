package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// CreateList appends a new list for the authenticated user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	count, err := s.lists.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count lists: %w", err)
	}
	if count >= MaxListsPerUser {
		return nil, domain.NewValidationError("lists", "limit reached (max 50)")
	}

	var created *domain.List
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.lists.Create(txCtx, userID, name)
		if createErr != nil {
			return fmt.Errorf("create list: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeList,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": map[string]any{"new": name}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", created.ID.String()),
	)
	return created, nil
}
