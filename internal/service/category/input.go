package category

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	ListID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
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

// RenameCategoryInput holds the parameters for renaming a category.
type RenameCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i RenameCategoryInput) Validate() error {
	var errs []domain.FieldError
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderCategoriesInput lists every category of ListID in the desired order.
type ReorderCategoriesInput struct {
	ListID      uuid.UUID
	CategoryIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderCategoriesInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if len(i.CategoryIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "category_ids", Message: "required"})
	}
	if len(i.CategoryIDs) > MaxCategoriesPerList {
		errs = append(errs, domain.FieldError{Field: "category_ids", Message: "too many"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.CategoryIDs))
	for _, id := range i.CategoryIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "category_ids", Message: "duplicate id " + id.String()})
			break
		}
		seen[id] = struct{}{}
	}

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
