package quotation

import "errors"

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrValidation        = errors.New("validation failed")
	ErrNoLineItems       = errors.New("quotation requires at least one line item")
	ErrNotEditable       = errors.New("quotation can no longer be modified")
)
