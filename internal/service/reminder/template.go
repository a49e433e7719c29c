package reminder

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(
	`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #1a1a1a;">Hey {{.Name}}!</h2>
  <p style="color: #444; line-height: 1.6;">What have you accomplished in the last few hours? Take a moment to log it.</p>
  <a href="{{.DashboardURL}}" style="display: inline-block; background: #2563eb; color: #fff; padding: 10px 20px; border-radius: 6px; text-decoration: none; margin-top: 8px;">Log an accomplishment</a>
  <p style="color: #999; font-size: 12px; margin-top: 32px;">You're receiving this because you set up reminders in Task Tracker.</p>
</div>`))

type reminderView struct {
	Name         string
	DashboardURL string
}

// message renders the fixed reminder email for one schedule.
func (s *Service) message(sch *domain.ReminderSchedule) (email.Message, error) {
	var buf bytes.Buffer
	err := reminderTmpl.Execute(&buf, reminderView{
		Name:         domain.GreetingName(sch.DisplayName),
		DashboardURL: strings.TrimRight(s.cfg.AppURL, "/") + "/dashboard",
	})
	if err != nil {
		return email.Message{}, fmt.Errorf("render reminder: %w", err)
	}

	return email.Message{
		From:    s.cfg.From,
		To:      []string{sch.EmailTo},
		Subject: s.cfg.Subject,
		HTML:    buf.String(),
	}, nil
}
