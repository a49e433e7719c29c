package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// RenameCategory changes a category's name.
func (s *Service) RenameCategory(ctx context.Context, input RenameCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.categories.GetByID(txCtx, userID, input.CategoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if old.Name == name {
			updated = old
			return nil
		}

		updated, err = s.categories.Rename(txCtx, userID, input.CategoryID, name)
		if err != nil {
			return fmt.Errorf("rename category: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &input.CategoryID,
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

	s.log.InfoContext(ctx, "category renamed",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)
	return updated, nil
}

// ReorderCategories rewrites sort positions to match the given order.
// The ids must be exactly the categories of the list.
func (s *Service) ReorderCategories(ctx context.Context, input ReorderCategoriesInput) ([]*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reordered []*domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.ListByList(txCtx, userID, input.ListID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if !sameSet(current, input.CategoryIDs) {
			return domain.NewValidationError("category_ids", "must list every category of the list exactly once")
		}

		if err := s.categories.Reorder(txCtx, userID, input.ListID, input.CategoryIDs); err != nil {
			return fmt.Errorf("reorder categories: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeList,
			EntityID:   &input.ListID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"category_order": map[string]any{"new": input.CategoryIDs}},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		reordered, err = s.categories.ListByList(txCtx, userID, input.ListID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "categories reordered",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.Int("count", len(input.CategoryIDs)),
	)
	return reordered, nil
}

func sameSet(current []*domain.Category, ids []uuid.UUID) bool {
	if len(current) != len(ids) {
		return false
	}
	want := make(map[uuid.UUID]struct{}, len(current))
	for _, c := range current {
		want[c.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
	}
	return true
}
