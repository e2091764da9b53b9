package lead

import (
	"errors"
	"fmt"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid lead status transition")
)

// DuplicateError is returned when a lead with the same email or phone already
// exists; it carries the existing id so the caller can redirect instead of
// retrying.
type DuplicateError struct {
	ExistingID int64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("lead already exists (id=%d)", e.ExistingID)
}
