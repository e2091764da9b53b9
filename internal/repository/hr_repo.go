package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dealershub/internal/domain"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	return conn(ctx, r.db).Create(e).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := conn(ctx, r.db).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	var out []domain.Employee
	q := conn(ctx, r.db).Model(&domain.Employee{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) Create(ctx context.Context, p *domain.Payroll) error {
	return conn(ctx, r.db).Create(p).Error
}

// EmployeeIDsForMonth returns the ids already covered by a payroll row for
// the month.
func (r *PayrollRepository) EmployeeIDsForMonth(ctx context.Context, month string) (map[int64]bool, error) {
	var ids []int64
	err := conn(ctx, r.db).
		Model(&domain.Payroll{}).
		Where("month = ?", month).
		Pluck("employee_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *PayrollRepository) ListByMonth(ctx context.Context, month string) ([]domain.Payroll, error) {
	var out []domain.Payroll
	err := conn(ctx, r.db).
		Where("month = ?", month).
		Order("employee_id").
		Find(&out).Error
	return out, err
}
