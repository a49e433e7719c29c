package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// GetSettings returns the user's schedule, or the default schedule addressed
// to the account email when none is stored. A default has a nil ID.
func (s *Service) GetSettings(ctx context.Context) (*domain.ReminderSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sch, err := s.reminders.GetByUser(ctx, userID)
	if err == nil {
		return sch, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get reminder: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	def := domain.DefaultReminderSchedule(userID, user.Email, "")
	return &def, nil
}

// SaveSettings creates or replaces the user's schedule.
func (s *Service) SaveSettings(ctx context.Context, input SaveSettingsInput) (*domain.ReminderSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	sch := input.schedule(userID)

	var saved *domain.ReminderSchedule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.reminders.Upsert(txCtx, sch)
		if err != nil {
			return fmt.Errorf("upsert reminder: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReminder,
			EntityID:   &saved.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"email_to":  map[string]any{"new": saved.EmailTo},
				"timezone":  map[string]any{"new": saved.Timezone},
				"is_active": map[string]any{"new": saved.IsActive},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reminder settings saved",
		slog.String("user_id", userID.String()),
		slog.String("timezone", saved.Timezone),
		slog.Bool("active", saved.IsActive),
	)
	return saved, nil
}

// DeleteSettings removes the user's schedule.
func (s *Service) DeleteSettings(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reminders.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("delete reminder: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReminder,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reminder settings deleted", slog.String("user_id", userID.String()))
	return nil
}

// Timezones returns the zones offered by the settings picker.
func (s *Service) Timezones() []string {
	out := make([]string, len(domain.CommonTimezones))
	copy(out, domain.CommonTimezones)
	return out
}
