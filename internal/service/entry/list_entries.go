package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// ListEntries returns every entry of a list, newest date first.
func (s *Service) ListEntries(ctx context.Context, listID uuid.UUID) ([]*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	entries, err := s.entries.ListByList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
