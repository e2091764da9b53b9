package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type JobCardRepository struct {
	db *gorm.DB
}

func NewJobCardRepository(db *gorm.DB) *JobCardRepository {
	return &JobCardRepository{db: db}
}

func (r *JobCardRepository) Create(ctx context.Context, j *domain.JobCard) error {
	return conn(ctx, r.db).Create(j).Error
}

func (r *JobCardRepository) GetByID(ctx context.Context, id int64) (*domain.JobCard, error) {
	var j domain.JobCard
	err := conn(ctx, r.db).First(&j, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// NextJobNo allocates the next JC-YYYY-NNN number; call inside the insert
// transaction.
func (r *JobCardRepository) NextJobNo(ctx context.Context, now time.Time) (string, error) {
	return NextDocumentNumber(ctx, r.db, "job_cards", "job_no", "JC", now)
}

func (r *JobCardRepository) Update(ctx context.Context, j *domain.JobCard) error {
	return conn(ctx, r.db).Save(j).Error
}

func (r *JobCardRepository) List(ctx context.Context, status domain.JobCardStatus, limit, offset int) ([]domain.JobCard, int64, error) {
	q := conn(ctx, r.db).Model(&domain.JobCard{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.JobCard
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
