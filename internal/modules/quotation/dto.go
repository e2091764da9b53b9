package quotation

import "dealershub/internal/domain"

type LineItemRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	TaxRate     int    `json:"tax_rate" validate:"gte=0,lte=100"`
}

type CreateQuotationRequest struct {
	LeadID    *int64            `json:"lead_id,omitempty"`
	Customer  string            `json:"customer" validate:"required"`
	Vehicle   string            `json:"vehicle" validate:"required"`
	Items     []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	ValidDays int               `json:"valid_days" validate:"gte=0,lte=90"`
	Notes     string            `json:"notes"`
}

type RecomputeRequest struct {
	Items []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

// OverrideTotalsRequest carries caller-supplied totals. The server stores
// them as-is; Reason goes to the activity trail.
type OverrideTotalsRequest struct {
	Subtotal int64  `json:"subtotal" validate:"gte=0"`
	Tax      int64  `json:"tax" validate:"gte=0"`
	Total    int64  `json:"total" validate:"gte=0"`
	Reason   string `json:"reason" validate:"required"`
}

type ListResponse struct {
	Quotations []domain.Quotation `json:"quotations"`
	Total      int64              `json:"total"`
}
