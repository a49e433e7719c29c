package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tasktracker-backend/internal/adapter/provider/logmail"
	"github.com/heartmarshall/tasktracker-backend/internal/adapter/provider/resend"
	"github.com/heartmarshall/tasktracker-backend/internal/adapter/provider/smtp"
	"github.com/heartmarshall/tasktracker-backend/internal/config"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

// NewMailer picks the email transport named by cfg.Provider.
func NewMailer(cfg config.EmailConfig, logger *slog.Logger) (email.Sender, error) {
	switch cfg.Provider {
	case config.EmailProviderResend:
		return resend.NewClientWithURL(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.From, cfg.Timeout, logger), nil
	case config.EmailProviderSMTP:
		return smtp.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.From, cfg.Timeout, logger), nil
	case config.EmailProviderLog:
		return logmail.NewSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
