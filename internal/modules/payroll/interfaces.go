package payroll

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
)

// EmployeeReader lists the employees in scope for a payroll run.
type EmployeeReader interface {
	ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error)
}

// PayrollRepository defines payroll data access.
type PayrollRepository interface {
	Create(ctx context.Context, p *domain.Payroll) error
	EmployeeIDsForMonth(ctx context.Context, month string) (map[int64]bool, error)
	ListByMonth(ctx context.Context, month string) ([]domain.Payroll, error)
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier announces a finished payroll run to HR.
type Notifier interface {
	NotifyByRole(ctx context.Context, role domain.Role, p notification.Payload, sendEmail bool) error
}
