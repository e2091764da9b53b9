package delivery

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
)

// DeliveryRepository defines delivery data access.
type DeliveryRepository interface {
	Create(ctx context.Context, d *domain.Delivery) error
	GetByID(ctx context.Context, id int64) (*domain.Delivery, error)
	Update(ctx context.Context, d *domain.Delivery) error
	List(ctx context.Context, status domain.DeliveryStatus, limit, offset int) ([]domain.Delivery, int64, error)
}

// BookingStore reads the booking and flips it to delivered.
type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}

// AppointmentStore creates the first free service appointment.
type AppointmentStore interface {
	Create(ctx context.Context, a *domain.Appointment) error
}

// HistoryStore appends the handover to the vehicle's service history.
type HistoryStore interface {
	Create(ctx context.Context, h *domain.ServiceHistory) error
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers handover notifications to staff roles.
type Notifier interface {
	NotifyByRole(ctx context.Context, role domain.Role, p notification.Payload, sendEmail bool) error
}
