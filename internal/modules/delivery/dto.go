package delivery

import (
	"time"

	"dealershub/internal/domain"
)

type ScheduleDeliveryRequest struct {
	BookingID    int64            `json:"booking_id" validate:"required"`
	ScheduledFor *time.Time       `json:"scheduled_for,omitempty"`
	Checklist    domain.Checklist `json:"checklist,omitempty"`
}

type CompleteDeliveryRequest struct {
	Feedback      string `json:"feedback"`
	HandoverPhoto string `json:"handover_photo"`
}

// CompleteDeliveryResponse returns the handover outcome together with the
// first free service appointment it spawned.
type CompleteDeliveryResponse struct {
	Delivery    *domain.Delivery    `json:"delivery"`
	Appointment *domain.Appointment `json:"appointment"`
}

type ListResponse struct {
	Deliveries []domain.Delivery `json:"deliveries"`
	Total      int64             `json:"total"`
}
