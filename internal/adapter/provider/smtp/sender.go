package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mail "gopkg.in/mail.v2"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

// dialer is the subset of *mail.Dialer used by Sender.
type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Sender delivers email over SMTP.
type Sender struct {
	dialer dialer
	from   string
	log    *slog.Logger
}

// NewSender creates an SMTP sender. timeout bounds each read/write on the connection.
func NewSender(host string, port int, username, password, from string, timeout time.Duration, logger *slog.Logger) *Sender {
	d := mail.NewDialer(host, port, username, password)
	d.Timeout = timeout
	return &Sender{dialer: d, from: from, log: logger.With("adapter", "smtp")}
}

// Send builds a MIME message and hands it to the SMTP server.
// The dialer has no context support; ctx is only checked before dialing.
func (s *Sender) Send(ctx context.Context, msg email.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = s.from
	}

	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.ErrorContext(ctx, "smtp send failed", slog.String("error", err.Error()))
		return fmt.Errorf("smtp: %w: %w", domain.ErrDelivery, err)
	}

	s.log.DebugContext(ctx, "smtp email sent", slog.Int("recipients", len(msg.To)))
	return nil
}
