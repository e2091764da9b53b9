package inventory

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
)

// SparePartRepository defines spare-part data access.
type SparePartRepository interface {
	Create(ctx context.Context, p *domain.SparePart) error
	GetByID(ctx context.Context, id int64) (*domain.SparePart, error)
	UpdateStock(ctx context.Context, id int64, stock int64) error
	List(ctx context.Context, limit, offset int) ([]domain.SparePart, int64, error)
	ListLowStock(ctx context.Context) ([]domain.SparePart, error)
}

// Notifier fans low-stock alerts out to a role.
type Notifier interface {
	NotifyByRole(ctx context.Context, role domain.Role, p notification.Payload, sendEmail bool) error
}
