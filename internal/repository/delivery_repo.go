package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type DeliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *domain.Delivery) error {
	return conn(ctx, r.db).Create(d).Error
}

func (r *DeliveryRepository) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	var d domain.Delivery
	err := conn(ctx, r.db).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Update(ctx context.Context, d *domain.Delivery) error {
	return conn(ctx, r.db).Save(d).Error
}

func (r *DeliveryRepository) List(ctx context.Context, status domain.DeliveryStatus, limit, offset int) ([]domain.Delivery, int64, error) {
	q := conn(ctx, r.db).Model(&domain.Delivery{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Delivery
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
