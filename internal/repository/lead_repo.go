package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	return conn(ctx, r.db).Create(l).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var l domain.Lead
	err := conn(ctx, r.db).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByEmailOrPhone returns the first lead matching either contact field.
func (r *LeadRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Lead, error) {
	var l domain.Lead
	err := conn(ctx, r.db).
		Where("email = ? OR phone = ?", email, phone).
		Order("id").
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// LeadFilter composes the optional list predicates at the query level.
type LeadFilter struct {
	Status      domain.LeadStatus
	Temperature domain.LeadTemperature
	AssignedTo  *int64
	Limit       int
	Offset      int
}

func (r *LeadRepository) List(ctx context.Context, f LeadFilter) ([]domain.Lead, int64, error) {
	q := conn(ctx, r.db).Model(&domain.Lead{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Temperature != "" {
		q = q.Where("temperature = ?", f.Temperature)
	}
	if f.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *f.AssignedTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []domain.Lead
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if err := q.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	return conn(ctx, r.db).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	return conn(ctx, r.db).Save(l).Error
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Delete(&domain.Lead{}, id).Error
}
