package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type SparePartRepository struct {
	db *gorm.DB
}

func NewSparePartRepository(db *gorm.DB) *SparePartRepository {
	return &SparePartRepository{db: db}
}

func (r *SparePartRepository) Create(ctx context.Context, p *domain.SparePart) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *SparePartRepository) GetByID(ctx context.Context, id int64) (*domain.SparePart, error) {
	var p domain.SparePart
	err := conn(ctx, r.db).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SparePartRepository) UpdateStock(ctx context.Context, id int64, stock int64) error {
	return conn(ctx, r.db).
		Model(&domain.SparePart{}).
		Where("id = ?", id).
		Update("stock", stock).Error
}

func (r *SparePartRepository) List(ctx context.Context, limit, offset int) ([]domain.SparePart, int64, error) {
	q := conn(ctx, r.db).Model(&domain.SparePart{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.SparePart
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Order("sku").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListLowStock returns parts at or below their reorder point.
func (r *SparePartRepository) ListLowStock(ctx context.Context) ([]domain.SparePart, error) {
	var out []domain.SparePart
	err := conn(ctx, r.db).
		Where("stock <= reorder_point").
		Order("stock ASC").
		Find(&out).Error
	return out, err
}
