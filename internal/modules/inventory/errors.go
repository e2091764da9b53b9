package inventory

import "errors"

var (
	ErrPartNotFound = errors.New("spare part not found")
	ErrDuplicateSKU = errors.New("spare part SKU already exists")
	ErrValidation   = errors.New("validation error")
)
