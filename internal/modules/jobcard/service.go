package jobcard

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/inventory"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

const numberRetries = 3

type Service struct {
	repo         JobCardRepository
	appointments AppointmentStore
	stock        StockDeductor
	history      HistoryStore
	tx           TxRunner
	notifs       Notifier
	audit        *activity.Service
	log          zerolog.Logger

	now func() time.Time
}

func NewService(repo JobCardRepository, appointments AppointmentStore, stock StockDeductor, history HistoryStore, tx TxRunner, notifs Notifier, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		stock:        stock,
		history:      history,
		tx:           tx,
		notifs:       notifs,
		audit:        audit,
		log:          log,
		now:          time.Now,
	}
}

// Create opens a job card with a per-year sequential job number and moves
// the linked appointment to in progress.
func (s *Service) Create(ctx context.Context, req CreateJobCardRequest, actor activity.Entry) (*domain.JobCard, error) {
	if req.Technician == "" {
		return nil, ErrValidation
	}

	now := s.now()
	j := &domain.JobCard{
		AppointmentID: req.AppointmentID,
		Technician:    req.Technician,
		Complaint:     req.Complaint,
		PartsData:     req.PartsData,
		LaborCharges:  req.LaborCharges,
		Status:        domain.JobCardInProgress,
		InvoiceStatus: domain.InvoiceNone,
		Notes:         req.Notes,
	}

	var lastErr error
	for attempt := 0; attempt < numberRetries; attempt++ {
		lastErr = s.tx.Do(ctx, func(ctx context.Context) error {
			if req.AppointmentID != nil {
				a, err := s.appointments.GetByID(ctx, *req.AppointmentID)
				if err != nil {
					return err
				}
				if a == nil {
					return ErrAppointmentNotFound
				}
			}

			jobNo, err := s.repo.NextJobNo(ctx, now)
			if err != nil {
				return err
			}
			j.JobNo = jobNo
			if err := s.repo.Create(ctx, j); err != nil {
				return err
			}

			if req.AppointmentID != nil {
				return s.appointments.UpdateStatus(ctx, *req.AppointmentID, domain.AppointmentInProgress)
			}
			return nil
		})
		if lastErr == nil {
			break
		}
		if !repository.IsDuplicate(lastErr) {
			return nil, lastErr
		}
		s.log.Warn().Str("job_no", j.JobNo).Int("attempt", attempt+1).Msg("job number collision, retrying")
		j.ID = 0
	}
	if lastErr != nil {
		return nil, lastErr
	}

	actor.Action = "created"
	actor.EntityType = "job_card"
	actor.EntityID = j.ID
	actor.EntityName = j.JobNo
	s.audit.Log(ctx, actor)

	return j, nil
}

// Complete closes out a job card. Stock deduction, totals, the appointment
// flip and the history row commit together; an already completed card is
// rejected before anything mutates.
func (s *Service) Complete(ctx context.Context, id int64, req CompleteJobCardRequest, actor activity.Entry) (*CompleteJobCardResponse, error) {
	now := s.now()

	var (
		j        *domain.JobCard
		deducted []inventory.StockAfter
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		j, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if j == nil {
			return ErrJobCardNotFound
		}
		if j.Status == domain.JobCardCompleted {
			return ErrAlreadyCompleted
		}

		if req.LaborCharges != nil {
			j.LaborCharges = *req.LaborCharges
		}
		if req.Notes != "" {
			j.Notes = req.Notes
		}

		if len(j.PartsData) > 0 {
			items := make([]inventory.Item, 0, len(j.PartsData))
			for _, p := range j.PartsData {
				items = append(items, inventory.Item{PartID: p.PartID, Quantity: p.Quantity})
			}
			deducted, err = s.stock.Deduct(ctx, items)
			if err != nil {
				return err
			}
		}

		j.TotalAmount = j.PartsData.Total() + j.LaborCharges
		j.Status = domain.JobCardCompleted
		j.InvoiceStatus = domain.InvoiceGenerated
		j.CompletedAt = &now
		if err := s.repo.Update(ctx, j); err != nil {
			return err
		}

		customer, vehicle := "", ""
		if j.AppointmentID != nil {
			a, err := s.appointments.GetByID(ctx, *j.AppointmentID)
			if err != nil {
				return err
			}
			if a == nil {
				return ErrAppointmentNotFound
			}
			customer, vehicle = a.Customer, a.Vehicle
			if err := s.appointments.UpdateStatus(ctx, a.ID, domain.AppointmentCompleted); err != nil {
				return err
			}
		}

		return s.history.Create(ctx, &domain.ServiceHistory{
			Customer:    customer,
			Vehicle:     vehicle,
			ServiceType: "Service Job " + j.JobNo,
			JobCardID:   &j.ID,
			Amount:      j.TotalAmount,
			ServicedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	partsTotal := j.PartsData.Total()
	actor.Action = "completed"
	actor.EntityType = "job_card"
	actor.EntityID = j.ID
	actor.EntityName = j.JobNo
	actor.Details = domain.ActivityDetails{
		"labor_charges":        j.LaborCharges,
		"parts_total":          partsTotal,
		"total_amount":         j.TotalAmount,
		"parts_deducted_count": len(deducted),
	}
	s.audit.Log(ctx, actor)

	if s.notifs != nil {
		if err := s.notifs.NotifyByRole(ctx, domain.RoleService, notification.JobCardCompleted(j.JobNo, j.ID), false); err != nil {
			s.log.Warn().Err(err).Int64("job_card_id", j.ID).Msg("job completion notification failed")
		}
	}

	movements := make([]StockMovement, 0, len(deducted))
	for _, d := range deducted {
		movements = append(movements, StockMovement(d))
	}
	return &CompleteJobCardResponse{
		JobCard:       j,
		PartsTotal:    partsTotal,
		LaborCharges:  j.LaborCharges,
		TotalAmount:   j.TotalAmount,
		PartsDeducted: movements,
	}, nil
}

// UpdateStatus toggles between in progress and waiting for parts.
// Completion goes through Complete, and a completed card is frozen.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.JobCardStatus, actor activity.Entry) (*domain.JobCard, error) {
	if status != domain.JobCardInProgress && status != domain.JobCardWaitingForParts {
		return nil, ErrInvalidStatus
	}

	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobCardNotFound
	}
	if j.Status == domain.JobCardCompleted {
		return nil, ErrAlreadyCompleted
	}

	j.Status = status
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}

	actor.Action = "status_changed"
	actor.EntityType = "job_card"
	actor.EntityID = j.ID
	actor.EntityName = j.JobNo
	actor.Details = domain.ActivityDetails{"status": status}
	s.audit.Log(ctx, actor)

	return j, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.JobCard, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobCardNotFound
	}
	return j, nil
}

func (s *Service) List(ctx context.Context, status domain.JobCardStatus, limit, offset int) ([]domain.JobCard, int64, error) {
	return s.repo.List(ctx, status, limit, offset)
}
