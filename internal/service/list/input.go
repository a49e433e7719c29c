package list

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameListInput holds the parameters for renaming a list.
type RenameListInput struct {
	ListID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i RenameListInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(raw string) []domain.FieldError {
	name := strings.TrimSpace(raw)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}
