// Package validation provides input validation utilities
package validation

import "fmt"

const (
	maxUsernameLen     = 80
	maxProfileFieldLen = 255
)

// ValidateUsername checks that a username is present and fits the column bound.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", maxUsernameLen)
	}
	return nil
}

// ValidateProfileField checks an optional profile field (bio, image URL)
// against its column bound. Empty values are allowed.
func ValidateProfileField(name, value string) error {
	if len(value) > maxProfileFieldLen {
		return fmt.Errorf("%s must not exceed %d characters", name, maxProfileFieldLen)
	}
	return nil
}
