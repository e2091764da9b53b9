package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return conn(ctx, r.db).Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := conn(ctx, r.db).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return conn(ctx, r.db).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *AppointmentRepository) List(ctx context.Context, status domain.AppointmentStatus, limit, offset int) ([]domain.Appointment, int64, error) {
	q := conn(ctx, r.db).Model(&domain.Appointment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Appointment
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
