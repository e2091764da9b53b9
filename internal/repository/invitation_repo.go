package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, i *domain.Invitation) error {
	return conn(ctx, r.db).Create(i).Error
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	var i domain.Invitation
	err := conn(ctx, r.db).Where("token = ?", token).First(&i).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InvitationRepository) FindPendingByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	var i domain.Invitation
	err := conn(ctx, r.db).
		Where("email = ? AND status = ?", email, domain.InvitationPending).
		First(&i).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InvitationRepository) Update(ctx context.Context, i *domain.Invitation) error {
	return conn(ctx, r.db).Save(i).Error
}

func (r *InvitationRepository) List(ctx context.Context, limit, offset int) ([]domain.Invitation, int64, error) {
	q := conn(ctx, r.db).Model(&domain.Invitation{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Invitation
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
