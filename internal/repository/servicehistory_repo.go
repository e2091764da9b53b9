package repository

import (
	"context"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type ServiceHistoryRepository struct {
	db *gorm.DB
}

func NewServiceHistoryRepository(db *gorm.DB) *ServiceHistoryRepository {
	return &ServiceHistoryRepository{db: db}
}

func (r *ServiceHistoryRepository) Create(ctx context.Context, h *domain.ServiceHistory) error {
	return conn(ctx, r.db).Create(h).Error
}

func (r *ServiceHistoryRepository) ListByVehicle(ctx context.Context, vehicle string, limit int) ([]domain.ServiceHistory, error) {
	q := conn(ctx, r.db).
		Where("vehicle = ?", vehicle).
		Order("serviced_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []domain.ServiceHistory
	err := q.Find(&out).Error
	return out, err
}
