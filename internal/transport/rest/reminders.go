package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	iauth "github.com/heartmarshall/tasktracker-backend/internal/auth"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/reminder"
)

// TriggerSecretHeader carries the shared secret of the scheduled trigger.
const TriggerSecretHeader = "X-Trigger-Secret"

type reminderService interface {
	GetSettings(ctx context.Context) (*domain.ReminderSchedule, error)
	SaveSettings(ctx context.Context, input reminder.SaveSettingsInput) (*domain.ReminderSchedule, error)
	DeleteSettings(ctx context.Context) error
	Timezones() []string
}

type reminderRunner interface {
	Run(ctx context.Context, now time.Time) (reminder.Report, error)
}

// ReminderHandler serves reminder settings and the scheduled dispatch trigger.
type ReminderHandler struct {
	svc    reminderService
	runner reminderRunner
	secret string
	log    *slog.Logger
	now    func() time.Time
}

// NewReminderHandler creates a ReminderHandler. An empty secret disables the trigger.
func NewReminderHandler(svc reminderService, runner reminderRunner, secret string, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		svc:    svc,
		runner: runner,
		secret: secret,
		log:    logger.With("handler", "reminder"),
		now:    time.Now,
	}
}

type reminderRequest struct {
	EmailTo    string   `json:"emailTo"`
	DaysOfWeek []int    `json:"daysOfWeek"`
	Times      []string `json:"times"`
	Timezone   string   `json:"timezone"`
	IsActive   bool     `json:"isActive"`
}

type reminderResponse struct {
	ID         *uuid.UUID `json:"id"`
	EmailTo    string     `json:"emailTo"`
	DaysOfWeek []int      `json:"daysOfWeek"`
	Times      []string   `json:"times"`
	Timezone   string     `json:"timezone"`
	IsActive   bool       `json:"isActive"`
	LastSentAt *time.Time `json:"lastSentAt"`
}

type triggerResponse struct {
	reminder.Report
	Error string `json:"error,omitempty"`
}

func toReminderResponse(s *domain.ReminderSchedule) reminderResponse {
	resp := reminderResponse{
		EmailTo:    s.EmailTo,
		DaysOfWeek: make([]int, 0, len(s.DaysOfWeek)),
		Times:      make([]string, 0, len(s.Times)),
		Timezone:   s.Timezone,
		IsActive:   s.IsActive,
		LastSentAt: s.LastSentAt,
	}
	// Unsaved defaults have no id.
	if s.ID != uuid.Nil {
		id := s.ID
		resp.ID = &id
	}
	for _, d := range s.DaysOfWeek {
		resp.DaysOfWeek = append(resp.DaysOfWeek, int(d))
	}
	for _, t := range s.Times {
		resp.Times = append(resp.Times, t.String())
	}
	return resp
}

// Get handles GET /api/reminders.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponse(s))
}

// Save handles PUT /api/reminders.
func (h *ReminderHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.SaveSettings(r.Context(), reminder.SaveSettingsInput{
		EmailTo:    req.EmailTo,
		DaysOfWeek: req.DaysOfWeek,
		Times:      req.Times,
		Timezone:   req.Timezone,
		IsActive:   req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponse(s))
}

// Delete handles DELETE /api/reminders.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSettings(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Timezones handles GET /api/reminders/timezones.
func (h *ReminderHandler) Timezones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Timezones())
}

// Trigger handles POST /internal/reminders/run. It runs one evaluation pass
// and answers with the pass report.
func (h *ReminderHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if !iauth.SecretMatches(h.secret, r.Header.Get(TriggerSecretHeader)) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.runner.Run(r.Context(), h.now())
	if err != nil {
		h.log.ErrorContext(r.Context(), "reminder pass failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, triggerResponse{Report: report, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, triggerResponse{Report: report})
}
