package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAdminNotFound    = errors.New("administrator not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSessionNotFound  = errors.New("session not found")

	// ErrInvalidCredentials carries the single undifferentiated login failure
	// message; it never reveals which lookup or check failed.
	ErrInvalidCredentials = errors.New("invalid credentials or inactive account")

	ErrSelfDelete = errors.New("you cannot delete your own account")
)

// DuplicateKeyError reports a store-level uniqueness violation, naming the
// field that collided.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ValidationError reports missing or invalid required input.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing or invalid: %s", strings.Join(e.Fields, ", "))
}
