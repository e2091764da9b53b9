package lead

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

type Service struct {
	repo   LeadRepository
	users  UserDirectory
	tx     TxRunner
	notifs Notifier
	audit  *activity.Service
	log    zerolog.Logger

	// pick selects the assignee index; swapped out in tests.
	pick func(n int) int
}

func NewService(repo LeadRepository, users UserDirectory, tx TxRunner, notifs Notifier, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		tx:     tx,
		notifs: notifs,
		audit:  audit,
		log:    log,
		pick:   rand.Intn,
	}
}

// Create runs the intake workflow: duplicate check, scoring, temperature,
// auto-assignment, persist. The dedupe check and insert share one
// transaction so two simultaneous submissions cannot both pass the check.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return nil, ErrValidation
	}

	score := Score(req.Phone, req.Email, req.Source, req.VehicleInterest)
	now := time.Now()
	nextAction := now.Add(24 * time.Hour)

	l := &domain.Lead{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Source:          req.Source,
		Status:          domain.LeadNew,
		Score:           score,
		Temperature:     TemperatureFor(score),
		VehicleInterest: req.VehicleInterest,
		NextAction:      "Initial Follow-up",
		NextActionDate:  &nextAction,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByEmailOrPhone(ctx, req.Email, req.Phone)
		if err != nil {
			return err
		}
		if existing != nil {
			return &DuplicateError{ExistingID: existing.ID}
		}

		// No sales or admin user is not an error: the lead stays unassigned.
		candidates, err := s.users.ListByRoles(ctx, domain.RoleSales, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if len(candidates) > 0 {
			assignee := candidates[s.pick(len(candidates))]
			l.AssignedTo = &assignee.ID
		}

		return s.repo.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, activity.Entry{
		Action:     "created",
		EntityType: "lead",
		EntityID:   l.ID,
		EntityName: l.Name,
		Details:    domain.ActivityDetails{"score": l.Score, "temperature": l.Temperature},
	})

	if l.AssignedTo != nil && s.notifs != nil {
		if _, err := s.notifs.Create(ctx, *l.AssignedTo, notification.LeadAssigned(l.Name, l.ID), false); err != nil {
			s.log.Warn().Err(err).Int64("lead_id", l.ID).Msg("lead assignment notification failed")
		}
	}

	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, f repository.LeadFilter) ([]domain.Lead, int64, error) {
	return s.repo.List(ctx, f)
}

// UpdateStatus moves a lead along the pipeline. Won is reserved for booking
// creation and is rejected here.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus, actor activity.Entry) (*domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}

	if !l.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	l.Status = status

	actor.Action = "status_changed"
	actor.EntityType = "lead"
	actor.EntityID = l.ID
	actor.EntityName = l.Name
	actor.Details = domain.ActivityDetails{"status": status}
	s.audit.Log(ctx, actor)

	return l, nil
}

// Delete removes a lead; explicit admin action only, enforced at the route.
func (s *Service) Delete(ctx context.Context, id int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	return s.repo.Delete(ctx, id)
}
