package invitation

import "dealershub/internal/domain"

type CreateInvitationRequest struct {
	Email string      `json:"email" validate:"required,email"`
	Role  domain.Role `json:"role" validate:"required,oneof=admin sales service hr"`
}

type ConsumeInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ConsumeInvitationResponse returns the created account and a session token
// so the new user lands signed in.
type ConsumeInvitationResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type ListResponse struct {
	Invitations []domain.Invitation `json:"invitations"`
	Total       int64               `json:"total"`
}
