package share

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
	"github.com/heartmarshall/tasktracker-backend/pkg/ctxutil"
)

// Share emails the report. Caller-supplied HTML is sanitized before sending.
// Transport failures wrap domain.ErrDelivery.
func (s *Service) Share(ctx context.Context, input ShareInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	to, err := input.validate(s.cfg.MaxRecipients)
	if err != nil {
		return err
	}

	body := strings.TrimSpace(input.HTML)
	if body != "" {
		body = s.policy.Sanitize(body)
	} else {
		body, err = s.export.HTML(ctx, *input.ListID)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = s.cfg.DefaultSubject
	}

	msg := email.Message{From: s.cfg.From, To: to, Subject: subject, HTML: body}
	if err := msg.Validate(); err != nil {
		return domain.NewValidationError("html", err.Error())
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send share: %w", err)
	}

	s.log.InfoContext(ctx, "report shared",
		slog.String("user_id", userID.String()),
		slog.Int("recipients", len(to)),
	)
	return nil
}
