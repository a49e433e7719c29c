package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// ListCategories returns a list's categories in sort order.
func (s *Service) ListCategories(ctx context.Context, listID uuid.UUID) ([]*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	cats, err := s.categories.ListByList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
