package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and export format of an entry date.
const DateLayout = "2006-01-02"

// Field limits shared by validation and the schema check constraints.
const (
	MaxNameLength    = 100
	MaxContentLength = 2000
)

// DefaultListName is the list every new account starts with.
const DefaultListName = "My List"

// DefaultCategoryNames seed the default list, in display order.
var DefaultCategoryNames = []string{
	"Bugs Fixed",
	"Projects Shipped",
	"Process Improvements",
	"Skills Learned",
	"Other Wins",
}

// List is a named grouping of categories. A user always owns at least one.
type List struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	SortOrder int
	CreatedAt time.Time
}

// Category belongs to exactly one list and orders its position by SortOrder.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ListID    uuid.UUID
	Name      string
	SortOrder int
	CreatedAt time.Time
}

// Entry is a dated accomplishment inside a category.
// EntryDate has calendar-day granularity and is kept at UTC midnight.
type Entry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Content    string
	EntryDate  time.Time
	CreatedAt  time.Time
}

// Day returns the entry date formatted as YYYY-MM-DD.
func (e Entry) Day() string {
	return e.EntryDate.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// TruncateDay returns the calendar day of t (in t's location) as UTC midnight.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
