// Package logmail is a dry-run email sender that only logs.
package logmail

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

// Sender logs each message and reports success.
type Sender struct {
	log *slog.Logger
}

// NewSender creates a log-only sender.
func NewSender(logger *slog.Logger) *Sender {
	return &Sender{log: logger.With("adapter", "logmail")}
}

// Send logs the envelope. The body is not logged.
func (s *Sender) Send(ctx context.Context, msg email.Message) error {
	s.log.InfoContext(ctx, "email (dry run)",
		slog.String("from", msg.From),
		slog.String("to", strings.Join(msg.To, ",")),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
