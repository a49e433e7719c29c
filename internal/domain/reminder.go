package domain

import (
	"fmt"
	"slices"
	"time"
	_ "time/tzdata" // schedules name arbitrary IANA zones

	"github.com/google/uuid"
)

// Clock is a wall-clock time of day (24h, minute precision).
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (zero-padded, 24h).
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("parse time of day %q: want HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustClock is ParseClock for constants; it panics on bad input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns minutes since midnight (0..1439).
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// ReminderSchedule describes when and where to send a reminder email for one user.
type ReminderSchedule struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EmailTo    string
	DaysOfWeek []time.Weekday
	Times      []Clock
	Timezone   string
	IsActive   bool
	LastSentAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DisplayName is the owner's display name, filled on evaluation reads only.
	DisplayName *string
}

// SkipReason explains why a schedule did not fire in an evaluation pass.
type SkipReason string

const (
	SkipNone     SkipReason = ""
	SkipInactive SkipReason = "inactive"
	SkipDay      SkipReason = "day"
	SkipTime     SkipReason = "time"
	SkipDedupe   SkipReason = "dedupe"
	// SkipClaimed means a concurrent pass recorded a send first.
	SkipClaimed SkipReason = "claimed"
)

// Eligibility reports whether s may fire at now. SkipNone means eligible.
// Each configured time opens a [t, t+window) slot measured in minutes since
// local midnight; slots never wrap past midnight.
func (s ReminderSchedule) Eligibility(now time.Time, window, dedupe time.Duration) (SkipReason, error) {
	if !s.IsActive {
		return SkipInactive, nil
	}

	loc, err := LoadTimezone(s.Timezone)
	if err != nil {
		return SkipNone, err
	}
	local := now.In(loc)

	if !slices.Contains(s.DaysOfWeek, local.Weekday()) {
		return SkipDay, nil
	}

	if !InWindow(s.Times, local.Hour()*60+local.Minute(), int(window/time.Minute)) {
		return SkipTime, nil
	}

	if s.RecentlySent(now, dedupe) {
		return SkipDedupe, nil
	}

	return SkipNone, nil
}

// LoadTimezone loads a named IANA zone. The empty name and "Local" are
// rejected: time.LoadLocation maps them to UTC and the host zone.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("load timezone %q: not an IANA zone name", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// InWindow reports whether currentMinutes falls in [t, t+windowMinutes) for any t.
func InWindow(times []Clock, currentMinutes, windowMinutes int) bool {
	for _, t := range times {
		start := t.Minutes()
		if currentMinutes >= start && currentMinutes < start+windowMinutes {
			return true
		}
	}
	return false
}

// RecentlySent reports whether the last send happened less than dedupe ago.
func (s ReminderSchedule) RecentlySent(now time.Time, dedupe time.Duration) bool {
	return s.LastSentAt != nil && now.Sub(*s.LastSentAt) < dedupe
}

// DefaultReminderSchedule returns the settings offered to a user with no schedule:
// weekdays at 11:00 and 15:00, active.
func DefaultReminderSchedule(userID uuid.UUID, emailTo, timezone string) ReminderSchedule {
	if timezone == "" {
		timezone = "UTC"
	}
	return ReminderSchedule{
		UserID:     userID,
		EmailTo:    emailTo,
		DaysOfWeek: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		Times:      []Clock{MustClock("11:00"), MustClock("15:00")},
		Timezone:   timezone,
		IsActive:   true,
	}
}

// CommonTimezones are the zones offered by the settings picker.
var CommonTimezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Anchorage",
	"Pacific/Honolulu",
	"Europe/London",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Australia/Sydney",
}
