package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if c.Share.PerMinute <= 0 {
		return fmt.Errorf("share.per_minute must be > 0 (got %d)", c.Share.PerMinute)
	}
	if c.Share.MaxRecipients <= 0 {
		return fmt.Errorf("share.max_recipients must be > 0 (got %d)", c.Share.MaxRecipients)
	}

	return nil
}

func (e *EmailConfig) validate() error {
	switch e.Provider {
	case EmailProviderResend:
		if e.ResendAPIKey == "" {
			return fmt.Errorf("resend_api_key is required for provider %q", e.Provider)
		}
	case EmailProviderSMTP:
		if e.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required for provider %q", e.Provider)
		}
		if e.SMTPPort <= 0 {
			return fmt.Errorf("smtp_port must be > 0 (got %d)", e.SMTPPort)
		}
	case EmailProviderLog:
	default:
		return fmt.Errorf("unknown provider %q", e.Provider)
	}
	if e.From == "" {
		return fmt.Errorf("from is required")
	}
	return nil
}

func (r *ReminderConfig) validate() error {
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", r.Window)
	}
	if r.Dedupe <= 0 || r.Dedupe >= r.Window {
		return fmt.Errorf("dedupe must be > 0 and shorter than window (got %s, window %s)", r.Dedupe, r.Window)
	}
	if _, err := url.ParseRequestURI(r.AppURL); err != nil {
		return fmt.Errorf("app_url: %w", err)
	}
	if r.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", r.Concurrency)
	}
	return nil
}
