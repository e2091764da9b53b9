package booking

import (
	"context"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

type Service struct {
	repo       BookingRepository
	quotations QuotationStore
	leads      LeadStore
	tx         TxRunner
	notifs     Notifier
	audit      *activity.Service
	log        zerolog.Logger
}

func NewService(repo BookingRepository, quotations QuotationStore, leads LeadStore, tx TxRunner, notifs Notifier, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		quotations: quotations,
		leads:      leads,
		tx:         tx,
		notifs:     notifs,
		audit:      audit,
		log:        log,
	}
}

// Create confirms a booking. The insert and the quotation/lead status flips
// run in one transaction so a failure on any step leaves nothing applied.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, actor activity.Entry) (*domain.Booking, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	b := &domain.Booking{
		LeadID:        req.LeadID,
		QuotationID:   req.QuotationID,
		Customer:      req.Customer,
		Vehicle:       req.Vehicle,
		Amount:        req.Amount,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.BookingConfirmed,
	}

	var assignee *int64
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if req.QuotationID != nil {
			q, err := s.quotations.GetByID(ctx, *req.QuotationID)
			if err != nil {
				return err
			}
			if q == nil {
				return ErrQuotationNotFound
			}
		}
		if req.LeadID != nil {
			l, err := s.leads.GetByID(ctx, *req.LeadID)
			if err != nil {
				return err
			}
			if l == nil {
				return ErrLeadNotFound
			}
			assignee = l.AssignedTo
		}

		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}
		if req.QuotationID != nil {
			if err := s.quotations.UpdateStatus(ctx, *req.QuotationID, domain.QuotationAccepted); err != nil {
				return err
			}
		}
		if req.LeadID != nil {
			if err := s.leads.UpdateStatus(ctx, *req.LeadID, domain.LeadWon); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actor.Action = "created"
	actor.EntityType = "booking"
	actor.EntityID = b.ID
	actor.EntityName = b.Customer
	actor.Details = domain.ActivityDetails{"amount": b.Amount, "vehicle": b.Vehicle}
	s.audit.Log(ctx, actor)

	if assignee != nil && s.notifs != nil {
		if _, err := s.notifs.Create(ctx, *assignee, notification.BookingCreated(b.Customer, b.ID), false); err != nil {
			s.log.Warn().Err(err).Int64("booking_id", b.ID).Msg("booking notification failed")
		}
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	return s.repo.List(ctx, f)
}

// Update patches the provided fields only.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest, actor activity.Entry) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	fields := map[string]any{}
	if req.PaymentStatus != nil {
		fields["payment_status"] = *req.PaymentStatus
		b.PaymentStatus = *req.PaymentStatus
	}
	if req.Status != nil {
		fields["status"] = *req.Status
		b.Status = *req.Status
	}
	if req.DeliveryDate != nil {
		fields["delivery_date"] = *req.DeliveryDate
		b.DeliveryDate = req.DeliveryDate
	}
	if req.ReceiptURL != nil {
		fields["receipt_url"] = *req.ReceiptURL
		b.ReceiptURL = *req.ReceiptURL
	}
	if len(fields) == 0 {
		return b, nil
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	actor.Action = "updated"
	actor.EntityType = "booking"
	actor.EntityID = b.ID
	actor.EntityName = b.Customer
	details := domain.ActivityDetails{}
	for k := range fields {
		details[k] = fields[k]
	}
	actor.Details = details
	s.audit.Log(ctx, actor)

	return b, nil
}
