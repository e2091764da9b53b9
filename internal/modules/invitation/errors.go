package invitation

import "errors"

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAlreadyAccepted    = errors.New("invitation already accepted")
	ErrExpired            = errors.New("invitation expired")
	ErrPendingExists      = errors.New("a pending invitation for this email already exists")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrValidation         = errors.New("validation failed")
)
