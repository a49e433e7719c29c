package client

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated account.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session is the result of a register, login or refresh call.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type List struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"listId"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type Entry struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Content    string    `json:"content"`
	// EntryDate is YYYY-MM-DD.
	EntryDate string    `json:"entryDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntry is the payload of CreateEntry. An empty EntryDate means today.
type NewEntry struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Content    string    `json:"content"`
	EntryDate  string    `json:"entryDate,omitempty"`
}

// ReminderSettings mirrors the reminder schedule of the signed-in user.
// ID is nil until the settings are saved for the first time.
type ReminderSettings struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	EmailTo    string     `json:"emailTo"`
	DaysOfWeek []int      `json:"daysOfWeek"`
	Times      []string   `json:"times"`
	Timezone   string     `json:"timezone"`
	IsActive   bool       `json:"isActive"`
	LastSentAt *time.Time `json:"lastSentAt,omitempty"`
}

// ShareRequest emails a report. Either HTML or ListID must be set.
type ShareRequest struct {
	To      string     `json:"to"`
	Subject string     `json:"subject,omitempty"`
	HTML    string     `json:"html,omitempty"`
	ListID  *uuid.UUID `json:"listId,omitempty"`
}
