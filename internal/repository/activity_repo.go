package repository

import (
	"context"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, e *domain.ActivityLog) error {
	return conn(ctx, r.db).Create(e).Error
}

// ActivityFilter composes the audit-trail listing predicates. Search matches
// entity name, user name and action.
type ActivityFilter struct {
	EntityType string
	Search     string
	Limit      int
	Offset     int
}

func (r *ActivityRepository) List(ctx context.Context, f ActivityFilter) ([]domain.ActivityLog, int64, error) {
	q := conn(ctx, r.db).Model(&domain.ActivityLog{})
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("entity_name LIKE ? OR user_name LIKE ? OR action LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var out []domain.ActivityLog
	if err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
