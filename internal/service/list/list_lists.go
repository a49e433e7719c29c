package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// ListLists returns the authenticated user's lists in display order.
func (s *Service) ListLists(ctx context.Context) ([]*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// GetList returns one list owned by the authenticated user.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.lists.GetByID(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}
