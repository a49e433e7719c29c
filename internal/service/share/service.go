// Package share emails a report of accomplishments to arbitrary recipients.
package share

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

type exporter interface {
	HTML(ctx context.Context, listID uuid.UUID) (string, error)
}

type mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Config holds the sharing envelope defaults.
type Config struct {
	From           string
	DefaultSubject string
	MaxRecipients  int
}

// Service sends shared reports.
type Service struct {
	export exporter
	mail   mailer
	policy *bluemonday.Policy
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new Share service.
func NewService(log *slog.Logger, export exporter, mail mailer, cfg Config) *Service {
	if cfg.MaxRecipients < 1 {
		cfg.MaxRecipients = 10
	}
	return &Service{
		export: export,
		mail:   mail,
		policy: bluemonday.UGCPolicy(),
		cfg:    cfg,
		log:    log.With("service", "share"),
	}
}
