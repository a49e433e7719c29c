// Package reminder implements the ReminderSchedule repository using PostgreSQL.
package reminder

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var columns = []string{
	"r.id", "r.user_id", "r.email_to", "r.days_of_week", "r.times",
	"r.timezone", "r.is_active", "r.last_sent_at", "r.created_at", "r.updated_at",
}

const returning = "RETURNING id, user_id, email_to, days_of_week, times, timezone, is_active, last_sent_at, created_at, updated_at"

// Repo provides reminder schedule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	EmailTo     string     `db:"email_to"`
	DaysOfWeek  []int32    `db:"days_of_week"`
	Times       []string   `db:"times"`
	Timezone    string     `db:"timezone"`
	IsActive    bool       `db:"is_active"`
	LastSentAt  *time.Time `db:"last_sent_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DisplayName *string    `db:"display_name"`
}

func (r row) toDomain() (*domain.ReminderSchedule, error) {
	days := make([]time.Weekday, len(r.DaysOfWeek))
	for i, d := range r.DaysOfWeek {
		days[i] = time.Weekday(d)
	}

	times := make([]domain.Clock, len(r.Times))
	for i, s := range r.Times {
		c, err := domain.ParseClock(s)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: %w", r.ID, err)
		}
		times[i] = c
	}

	return &domain.ReminderSchedule{
		ID:          r.ID,
		UserID:      r.UserID,
		EmailTo:     r.EmailTo,
		DaysOfWeek:  days,
		Times:       times,
		Timezone:    r.Timezone,
		IsActive:    r.IsActive,
		LastSentAt:  r.LastSentAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DisplayName: r.DisplayName,
	}, nil
}

func encodeDays(days []time.Weekday) []int32 {
	out := make([]int32, len(days))
	for i, d := range days {
		out[i] = int32(d)
	}
	return out
}

func encodeTimes(times []domain.Clock) []string {
	out := make([]string, len(times))
	for i, c := range times {
		out[i] = c.String()
	}
	return out
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByUser returns the user's schedule.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.ReminderSchedule, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("reminder_schedules r").
		Where(sq.Eq{"r.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", userID)
	}
	return out.toDomain()
}

// ListActive returns every active schedule with its owner's display name.
// A row whose stored times fail to parse is skipped and reported in bad.
func (r *Repo) ListActive(ctx context.Context) (schedules []*domain.ReminderSchedule, bad []error, err error) {
	query, args, err := postgres.Builder().
		Select(append(columns, "u.display_name")...).
		From("reminder_schedules r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.is_active": true}).
		OrderBy("r.created_at").
		ToSql()
	if err != nil {
		return nil, nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, nil, fmt.Errorf("list active reminders: %w", err)
	}

	schedules = make([]*domain.ReminderSchedule, 0, len(rows))
	for _, rw := range rows {
		s, convErr := rw.toDomain()
		if convErr != nil {
			bad = append(bad, convErr)
			continue
		}
		schedules = append(schedules, s)
	}
	return schedules, bad, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Upsert creates or replaces the user's schedule. last_sent_at is preserved.
func (r *Repo) Upsert(ctx context.Context, s *domain.ReminderSchedule) (*domain.ReminderSchedule, error) {
	query, args, err := postgres.Builder().
		Insert("reminder_schedules").
		Columns("user_id", "email_to", "days_of_week", "times", "timezone", "is_active").
		Values(s.UserID, s.EmailTo, encodeDays(s.DaysOfWeek), encodeTimes(s.Times), s.Timezone, s.IsActive).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			email_to = EXCLUDED.email_to,
			days_of_week = EXCLUDED.days_of_week,
			times = EXCLUDED.times,
			timezone = EXCLUDED.timezone,
			is_active = EXCLUDED.is_active,
			updated_at = now() ` + returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", s.UserID)
	}
	return out.toDomain()
}

// Delete removes the user's schedule.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("reminder_schedules").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "reminder", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "reminder", userID)
	}
	return nil
}

// ClaimSend sets last_sent_at = now only if it still equals prev.
// now is stored with microsecond precision; pass the same value to ReleaseSend.
// It returns false when another pass already moved last_sent_at.
func (r *Repo) ClaimSend(ctx context.Context, id uuid.UUID, prev *time.Time, now time.Time) (bool, error) {
	now = now.Truncate(time.Microsecond)
	query, args, err := postgres.Builder().
		Update("reminder_schedules").
		Set("last_sent_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("last_sent_at IS NOT DISTINCT FROM ?::timestamptz", prev)).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "reminder", id)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseSend restores last_sent_at to prev if it still holds the claim at now.
func (r *Repo) ReleaseSend(ctx context.Context, id uuid.UUID, now time.Time, prev *time.Time) error {
	now = now.Truncate(time.Microsecond)
	query, args, err := postgres.Builder().
		Update("reminder_schedules").
		Set("last_sent_at", prev).
		Where(sq.Eq{"id": id, "last_sent_at": now}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	return nil
}
