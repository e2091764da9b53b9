package quotation

import (
	"context"
	"time"

	"dealershub/internal/domain"
	"dealershub/internal/repository"
)

// QuotationRepository defines quotation data access.
type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) error
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	NextNumber(ctx context.Context, now time.Time) (string, error)
	UpdateStatus(ctx context.Context, id int64, status domain.QuotationStatus) error
	UpdateTotals(ctx context.Context, id int64, lineItems domain.LineItems, subtotal, tax, total int64) error
	List(ctx context.Context, f repository.QuotationFilter) ([]domain.Quotation, int64, error)
}

// LeadReader verifies referenced leads exist.
type LeadReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
