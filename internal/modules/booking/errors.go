package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidAmount     = errors.New("booking amount must be positive")
	ErrValidation        = errors.New("validation failed")
)
