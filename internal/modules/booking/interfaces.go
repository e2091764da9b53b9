package booking

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

// BookingRepository defines booking data access.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error)
}

// QuotationStore flips a referenced quotation to accepted.
type QuotationStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.QuotationStatus) error
}

// LeadStore flips a referenced lead to won.
type LeadStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers booking notifications.
type Notifier interface {
	Create(ctx context.Context, userID int64, p notification.Payload, sendEmail bool) (*domain.Notification, error)
}
