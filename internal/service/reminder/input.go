package reminder

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

// SaveSettingsInput holds the user's reminder configuration.
type SaveSettingsInput struct {
	EmailTo    string
	DaysOfWeek []int
	Times      []string
	Timezone   string
	IsActive   bool
}

// Validate checks all fields and collects all errors.
func (i SaveSettingsInput) Validate() error {
	var errs []domain.FieldError

	if !email.ValidAddress(strings.TrimSpace(i.EmailTo)) {
		errs = append(errs, domain.FieldError{Field: "email_to", Message: "must be a valid email address"})
	}

	if len(i.DaysOfWeek) == 0 {
		errs = append(errs, domain.FieldError{Field: "days_of_week", Message: "at least one day required"})
	}
	for _, d := range i.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, domain.FieldError{Field: "days_of_week", Message: fmt.Sprintf("invalid day %d (0=Sunday..6=Saturday)", d)})
			break
		}
	}

	if len(i.Times) == 0 {
		errs = append(errs, domain.FieldError{Field: "times", Message: "at least one time required"})
	}
	for _, t := range i.Times {
		if _, err := domain.ParseClock(t); err != nil {
			errs = append(errs, domain.FieldError{Field: "times", Message: fmt.Sprintf("invalid time %q (want HH:MM)", t)})
			break
		}
	}

	if i.Timezone == "" {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "required"})
	} else if _, err := domain.LoadTimezone(i.Timezone); err != nil {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA timezone"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// schedule builds the normalized schedule. Call only after Validate.
// Days are deduplicated and sorted; times are deduplicated keeping first occurrence.
func (i SaveSettingsInput) schedule(userID uuid.UUID) *domain.ReminderSchedule {
	days := make([]time.Weekday, 0, len(i.DaysOfWeek))
	for _, d := range i.DaysOfWeek {
		days = append(days, time.Weekday(d))
	}
	slices.Sort(days)
	days = slices.Compact(days)

	times := make([]domain.Clock, 0, len(i.Times))
	for _, t := range i.Times {
		c := domain.MustClock(t)
		if !slices.Contains(times, c) {
			times = append(times, c)
		}
	}

	return &domain.ReminderSchedule{
		UserID:     userID,
		EmailTo:    strings.TrimSpace(i.EmailTo),
		DaysOfWeek: days,
		Times:      times,
		Timezone:   i.Timezone,
		IsActive:   i.IsActive,
	}
}
