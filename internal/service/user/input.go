package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// UpdateDisplayNameInput sets the name used in greetings. A nil or blank
// DisplayName clears it.
type UpdateDisplayNameInput struct {
	DisplayName *string
}

// Validate validates the update input.
func (i UpdateDisplayNameInput) Validate() error {
	if i.DisplayName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.DisplayName)) > domain.MaxNameLength {
		return domain.NewValidationError("display_name", "max 100 characters")
	}
	return nil
}

func (i UpdateDisplayNameInput) normalized() *string {
	if i.DisplayName == nil {
		return nil
	}
	name := strings.TrimSpace(*i.DisplayName)
	if name == "" {
		return nil
	}
	return &name
}
