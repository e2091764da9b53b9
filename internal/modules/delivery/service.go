package delivery

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
)

const firstServiceType = "First Free Service (1000km)"

type Service struct {
	repo         DeliveryRepository
	bookings     BookingStore
	appointments AppointmentStore
	history      HistoryStore
	tx           TxRunner
	notifs       Notifier
	audit        *activity.Service
	log          zerolog.Logger

	now func() time.Time
}

func NewService(repo DeliveryRepository, bookings BookingStore, appointments AppointmentStore, history HistoryStore, tx TxRunner, notifs Notifier, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		bookings:     bookings,
		appointments: appointments,
		history:      history,
		tx:           tx,
		notifs:       notifs,
		audit:        audit,
		log:          log,
		now:          time.Now,
	}
}

// Schedule books a handover slot for a confirmed booking.
func (s *Service) Schedule(ctx context.Context, req ScheduleDeliveryRequest, actor activity.Entry) (*domain.Delivery, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	d := &domain.Delivery{
		BookingID:    req.BookingID,
		PDIStatus:    domain.PDIPending,
		Checklist:    req.Checklist,
		Status:       domain.DeliveryScheduled,
		ScheduledFor: req.ScheduledFor,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	actor.Action = "scheduled"
	actor.EntityType = "delivery"
	actor.EntityID = d.ID
	actor.EntityName = b.Customer
	s.audit.Log(ctx, actor)

	return d, nil
}

// Complete finalizes a handover. The delivery update, the booking flip, the
// first free service appointment and the history row commit together; the
// completed status is terminal, a second call is rejected.
func (s *Service) Complete(ctx context.Context, id int64, req CompleteDeliveryRequest, actor activity.Entry) (*CompleteDeliveryResponse, error) {
	now := s.now()

	var (
		d *domain.Delivery
		b *domain.Booking
		a *domain.Appointment
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		d, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return ErrDeliveryNotFound
		}
		if d.Status == domain.DeliveryCompleted {
			return ErrAlreadyCompleted
		}

		b, err = s.bookings.GetByID(ctx, d.BookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}

		d.Status = domain.DeliveryCompleted
		d.PDIStatus = domain.PDIPassed
		d.DeliveryDate = &now
		d.Feedback = req.Feedback
		d.HandoverPhoto = req.HandoverPhoto
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}

		if err := s.bookings.UpdateFields(ctx, b.ID, map[string]any{
			"status":        domain.BookingDelivered,
			"delivery_date": now,
		}); err != nil {
			return err
		}

		a = &domain.Appointment{
			Customer:    b.Customer,
			Vehicle:     b.Vehicle,
			Date:        now.AddDate(0, 0, 30),
			ServiceType: firstServiceType,
			Status:      domain.AppointmentScheduled,
		}
		if err := s.appointments.Create(ctx, a); err != nil {
			return err
		}

		return s.history.Create(ctx, &domain.ServiceHistory{
			Customer:    b.Customer,
			Vehicle:     b.Vehicle,
			ServiceType: "Vehicle Delivery",
			DeliveryID:  &d.ID,
			Amount:      0,
			ServicedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	actor.Action = "delivered"
	actor.EntityType = "delivery"
	actor.EntityID = d.ID
	actor.EntityName = b.Customer
	actor.Details = domain.ActivityDetails{"vehicle": b.Vehicle, "appointment_id": a.ID}
	s.audit.Log(ctx, actor)

	if s.notifs != nil {
		// The service team staffs the follow-up appointment; admins get the
		// handover itself.
		if err := s.notifs.NotifyByRole(ctx, domain.RoleService, notification.AppointmentCreated(b.Customer, firstServiceType, a.ID), false); err != nil {
			s.log.Warn().Err(err).Int64("delivery_id", d.ID).Msg("appointment notification failed")
		}
		if err := s.notifs.NotifyByRole(ctx, domain.RoleAdmin, notification.DeliveryCompleted(b.Customer, b.Vehicle, d.ID), false); err != nil {
			s.log.Warn().Err(err).Int64("delivery_id", d.ID).Msg("delivery notification failed")
		}
	}

	return &CompleteDeliveryResponse{Delivery: d, Appointment: a}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDeliveryNotFound
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, status domain.DeliveryStatus, limit, offset int) ([]domain.Delivery, int64, error) {
	return s.repo.List(ctx, status, limit, offset)
}
