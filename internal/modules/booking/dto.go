package booking

import (
	"time"

	"dealershub/internal/domain"
)

type CreateBookingRequest struct {
	LeadID      *int64 `json:"lead_id,omitempty"`
	QuotationID *int64 `json:"quotation_id,omitempty"`
	Customer    string `json:"customer" validate:"required"`
	Vehicle     string `json:"vehicle" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}

// UpdateBookingRequest patches individual fields; absent fields are left
// untouched.
type UpdateBookingRequest struct {
	PaymentStatus *domain.PaymentStatus `json:"payment_status,omitempty"`
	Status        *domain.BookingStatus `json:"status,omitempty"`
	DeliveryDate  *time.Time            `json:"delivery_date,omitempty"`
	ReceiptURL    *string               `json:"receipt_url,omitempty"`
}

type ListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int64            `json:"total"`
}
