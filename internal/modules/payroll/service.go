package payroll

import (
	"context"
	"math"
	"regexp"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Service struct {
	employees EmployeeReader
	repo      PayrollRepository
	tx        TxRunner
	notifs    Notifier
	audit     *activity.Service
	log       zerolog.Logger
}

func NewService(employees EmployeeReader, repo PayrollRepository, tx TxRunner, notifs Notifier, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		employees: employees,
		repo:      repo,
		tx:        tx,
		notifs:    notifs,
		audit:     audit,
		log:       log,
	}
}

func round(v float64) int64 { return int64(math.Round(v)) }

// Generate creates the month's payroll rows for active employees not yet
// covered. The dedupe check and the inserts share one transaction, and the
// (employee, month) unique index rejects a concurrent double-run. Only the
// rows created by this run are returned.
func (s *Service) Generate(ctx context.Context, month string, actor activity.Entry) (*GeneratePayrollResponse, error) {
	if !monthPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}

	var created []domain.Payroll
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		employees, err := s.employees.ListByStatus(ctx, domain.EmployeeActive)
		if err != nil {
			return err
		}
		covered, err := s.repo.EmployeeIDsForMonth(ctx, month)
		if err != nil {
			return err
		}

		for _, e := range employees {
			if covered[e.ID] {
				continue
			}
			allowances := round(float64(e.BasicSalary) * 0.20)
			deductions := round(float64(e.BasicSalary) * 0.10)
			p := domain.Payroll{
				EmployeeID:  e.ID,
				Month:       month,
				BasicSalary: e.BasicSalary,
				Allowances:  allowances,
				Deductions:  deductions,
				NetSalary:   e.BasicSalary + allowances - deductions,
				Status:      domain.PayrollPending,
			}
			// A duplicate here means a concurrent run won the race for this
			// pair; the whole transaction rolls back and the caller retries.
			if err := s.repo.Create(ctx, &p); err != nil {
				return err
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actor.Action = "generated"
	actor.EntityType = "payroll"
	actor.EntityName = month
	actor.Details = domain.ActivityDetails{"created_count": len(created)}
	s.audit.Log(ctx, actor)

	if len(created) > 0 && s.notifs != nil {
		if err := s.notifs.NotifyByRole(ctx, domain.RoleHR, notification.PayrollGenerated(month, len(created)), false); err != nil {
			s.log.Warn().Err(err).Str("month", month).Msg("payroll notification failed")
		}
	}

	return &GeneratePayrollResponse{
		Month:        month,
		CreatedCount: len(created),
		Rows:         created,
	}, nil
}

func (s *Service) ListEmployees(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	return s.employees.ListByStatus(ctx, status)
}

func (s *Service) ListByMonth(ctx context.Context, month string) ([]domain.Payroll, error) {
	if !monthPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}
	return s.repo.ListByMonth(ctx, month)
}
