package jobcard

import (
	"context"
	"time"

	"dealershub/internal/domain"
	"dealershub/internal/modules/inventory"
	"dealershub/internal/modules/notification"
)

// JobCardRepository defines job card data access.
type JobCardRepository interface {
	Create(ctx context.Context, j *domain.JobCard) error
	GetByID(ctx context.Context, id int64) (*domain.JobCard, error)
	NextJobNo(ctx context.Context, now time.Time) (string, error)
	Update(ctx context.Context, j *domain.JobCard) error
	List(ctx context.Context, status domain.JobCardStatus, limit, offset int) ([]domain.JobCard, int64, error)
}

// AppointmentStore reads the linked appointment and moves it along.
type AppointmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// StockDeductor consumes spare-part stock for completed work.
type StockDeductor interface {
	Deduct(ctx context.Context, items []inventory.Item) ([]inventory.StockAfter, error)
}

// HistoryStore appends the completed job to the vehicle's service history.
type HistoryStore interface {
	Create(ctx context.Context, h *domain.ServiceHistory) error
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers job completion notifications to staff roles.
type Notifier interface {
	NotifyByRole(ctx context.Context, role domain.Role, p notification.Payload, sendEmail bool) error
}
