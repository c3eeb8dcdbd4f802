package services

import (
	"errors"
	"fmt"
	"strings"
)

// Shared sentinel errors. Handlers map these to HTTP statuses with errors.Is;
// anything that is none of them is treated as a persistence failure (500).
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrNotOwner           = errors.New("not the owner of this record")
)

// validationError aggregates field-level messages into one ErrValidation.
func validationError(messages []string) error {
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, ", "))
}
