package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	return conn(ctx, r.db).Create(q).Error
}

func (r *QuotationRepository) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	var q domain.Quotation
	err := conn(ctx, r.db).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// NextNumber allocates the next QT-YYYY-NNN number; call inside the insert
// transaction.
func (r *QuotationRepository) NextNumber(ctx context.Context, now time.Time) (string, error) {
	return NextDocumentNumber(ctx, r.db, "quotations", "number", "QT", now)
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, id int64, status domain.QuotationStatus) error {
	return conn(ctx, r.db).
		Model(&domain.Quotation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *QuotationRepository) UpdateTotals(ctx context.Context, id int64, lineItems domain.LineItems, subtotal, tax, total int64) error {
	return conn(ctx, r.db).
		Model(&domain.Quotation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"line_items": lineItems,
			"subtotal":   subtotal,
			"tax":        tax,
			"total":      total,
		}).Error
}

type QuotationFilter struct {
	Status domain.QuotationStatus
	LeadID *int64
	Limit  int
	Offset int
}

func (r *QuotationRepository) List(ctx context.Context, f QuotationFilter) ([]domain.Quotation, int64, error) {
	q := conn(ctx, r.db).Model(&domain.Quotation{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LeadID != nil {
		q = q.Where("lead_id = ?", *f.LeadID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Quotation
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
