package lead

import "dealershub/internal/domain"

type CreateLeadRequest struct {
	Name            string                  `json:"name" validate:"required"`
	Phone           string                  `json:"phone" validate:"required"`
	Email           string                  `json:"email" validate:"required,email"`
	Source          string                  `json:"source"`
	VehicleInterest *domain.VehicleInterest `json:"vehicle_interest,omitempty"`
}

type UpdateStatusRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required"`
	Reason string            `json:"reason"`
}

type ListResponse struct {
	Leads []domain.Lead `json:"leads"`
	Total int64         `json:"total"`
}
