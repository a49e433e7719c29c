// Package email defines the outbound email contract shared by reminders and sharing.
package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Message is one outbound HTML email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers messages. Implementations wrap transport rejections in domain.ErrDelivery.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SplitRecipients splits a comma-separated address list, trimming blanks.
func SplitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidAddress reports whether s is a single bare RFC 5322 address.
func ValidAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Validate checks that the message is sendable.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("email: no recipients")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("email: empty subject")
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("email: empty body")
	}
	return nil
}
