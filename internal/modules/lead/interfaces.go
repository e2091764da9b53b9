package lead

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

// LeadRepository defines lead data access.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Lead, error)
	List(ctx context.Context, f repository.LeadFilter) ([]domain.Lead, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	Delete(ctx context.Context, id int64) error
}

// UserDirectory resolves assignment candidates.
type UserDirectory interface {
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers lead notifications.
type Notifier interface {
	Create(ctx context.Context, userID int64, p notification.Payload, sendEmail bool) (*domain.Notification, error)
}
