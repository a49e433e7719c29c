package share

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

const maxSubjectLength = 200

// ShareInput describes one share request. To is a comma-separated address list.
// When HTML is empty the report of ListID is rendered instead.
type ShareInput struct {
	To      string
	Subject string
	HTML    string
	ListID  *uuid.UUID
}

func (i ShareInput) validate(maxRecipients int) ([]string, error) {
	var errs []domain.FieldError

	to := email.SplitRecipients(i.To)
	switch {
	case len(to) == 0:
		errs = append(errs, domain.FieldError{Field: "to", Message: "at least one recipient required"})
	case len(to) > maxRecipients:
		errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("max %d recipients", maxRecipients)})
	default:
		for _, addr := range to {
			if !email.ValidAddress(addr) {
				errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("invalid address %q", addr)})
				break
			}
		}
	}

	if utf8.RuneCountInString(i.Subject) > maxSubjectLength {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.HTML) == "" && (i.ListID == nil || *i.ListID == uuid.Nil) {
		errs = append(errs, domain.FieldError{Field: "html", Message: "html or list_id required"})
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return to, nil
}
