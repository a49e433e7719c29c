package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

type reminderRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.ReminderSchedule, error)
	ListActive(ctx context.Context) ([]*domain.ReminderSchedule, []error, error)
	Upsert(ctx context.Context, s *domain.ReminderSchedule) (*domain.ReminderSchedule, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	ClaimSend(ctx context.Context, id uuid.UUID, prev *time.Time, now time.Time) (bool, error)
	ReleaseSend(ctx context.Context, id uuid.UUID, now time.Time, prev *time.Time) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config controls the evaluation pass and the reminder email.
type Config struct {
	Window      time.Duration
	Dedupe      time.Duration
	AppURL      string
	Subject     string
	From        string
	Concurrency int
}

// Service manages reminder settings and runs evaluation passes.
type Service struct {
	reminders reminderRepo
	users     userRepo
	mail      mailer
	audit     auditLogger
	tx        txManager
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Reminder service.
func NewService(
	log *slog.Logger,
	reminders reminderRepo,
	users userRepo,
	mail mailer,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 4
	}
	return &Service{
		reminders: reminders,
		users:     users,
		mail:      mail,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "reminder"),
	}
}
