package jobcard

import "errors"

var (
	ErrJobCardNotFound     = errors.New("job card not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCompleted    = errors.New("job card already completed")
	ErrInvalidStatus       = errors.New("invalid job card status")
	ErrValidation          = errors.New("validation failed")
)
