package delivery

import "errors"

var (
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCompleted = errors.New("delivery already completed")
	ErrValidation       = errors.New("validation failed")
)
