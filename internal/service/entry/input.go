package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// CreateEntryInput holds the parameters for recording an accomplishment.
type CreateEntryInput struct {
	CategoryID uuid.UUID
	Content    string
	Date       string // YYYY-MM-DD; empty means today (UTC)
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > domain.MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 2000 characters"})
	}

	if i.Date != "" {
		if _, err := domain.ParseDate(i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveEntryInput reassigns an entry to another category.
type MoveEntryInput struct {
	EntryID    uuid.UUID
	CategoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MoveEntryInput) Validate() error {
	var errs []domain.FieldError
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
