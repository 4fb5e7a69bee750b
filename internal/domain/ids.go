package domain

import (
	"fmt"
	"strings"
)

// ValidateNumericID accepts workspace, space and list identifiers, which the
// API always issues as decimal strings. Task ids are alphanumeric and are not
// checked here.
func ValidateNumericID(kind, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%s: %w", kind, ErrEmptyID)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s %q: %w", kind, id, ErrInvalidID)
		}
	}
	return nil
}
