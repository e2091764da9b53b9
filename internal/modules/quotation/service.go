package quotation

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/repository"
)

// numberRetries bounds the duplicate-number backstop. The allocation runs
// inside the insert transaction, so a collision is only possible when two
// transactions read the same max sequence concurrently.
const numberRetries = 3

type Service struct {
	repo  QuotationRepository
	leads LeadReader
	tx    TxRunner
	audit *activity.Service
	log   zerolog.Logger

	now func() time.Time
}

func NewService(repo QuotationRepository, leads LeadReader, tx TxRunner, audit *activity.Service, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		leads: leads,
		tx:    tx,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func toLineItems(items []LineItemRequest) domain.LineItems {
	out := make(domain.LineItems, 0, len(items))
	for _, it := range items {
		out = append(out, domain.LineItem{
			Description: it.Description,
			Amount:      it.Amount,
			TaxRate:     it.TaxRate,
		})
	}
	return out
}

// Create builds a quotation with server-computed totals and a per-year
// sequential number. The unique index on number is the backstop for the
// read-max race; on a duplicate the whole transaction is retried.
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest, actor activity.Entry) (*domain.Quotation, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoLineItems
	}

	if req.LeadID != nil {
		l, err := s.leads.GetByID(ctx, *req.LeadID)
		if err != nil {
			return nil, err
		}
		if l == nil {
			return nil, ErrLeadNotFound
		}
	}

	items := toLineItems(req.Items)
	subtotal, tax := items.Totals()
	now := s.now()

	q := &domain.Quotation{
		LeadID:    req.LeadID,
		Customer:  req.Customer,
		Vehicle:   req.Vehicle,
		LineItems: items,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
		Status:    domain.QuotationDraft,
		Notes:     req.Notes,
	}
	if req.ValidDays > 0 {
		till := now.AddDate(0, 0, req.ValidDays)
		q.ValidTill = &till
	}

	var lastErr error
	for attempt := 0; attempt < numberRetries; attempt++ {
		lastErr = s.tx.Do(ctx, func(ctx context.Context) error {
			number, err := s.repo.NextNumber(ctx, now)
			if err != nil {
				return err
			}
			q.Number = number
			return s.repo.Create(ctx, q)
		})
		if lastErr == nil {
			break
		}
		if !repository.IsDuplicate(lastErr) {
			return nil, lastErr
		}
		s.log.Warn().Str("number", q.Number).Int("attempt", attempt+1).Msg("quotation number collision, retrying")
		q.ID = 0
	}
	if lastErr != nil {
		return nil, lastErr
	}

	actor.Action = "created"
	actor.EntityType = "quotation"
	actor.EntityID = q.ID
	actor.EntityName = q.Number
	actor.Details = domain.ActivityDetails{"customer": q.Customer, "total": q.Total}
	s.audit.Log(ctx, actor)

	return q, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	return q, nil
}

func (s *Service) List(ctx context.Context, f repository.QuotationFilter) ([]domain.Quotation, int64, error) {
	return s.repo.List(ctx, f)
}

// Send marks a draft quotation as sent to the customer.
func (s *Service) Send(ctx context.Context, id int64, actor activity.Entry) (*domain.Quotation, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	if q.Status != domain.QuotationDraft {
		return nil, ErrNotEditable
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.QuotationSent); err != nil {
		return nil, err
	}
	q.Status = domain.QuotationSent

	actor.Action = "sent"
	actor.EntityType = "quotation"
	actor.EntityID = q.ID
	actor.EntityName = q.Number
	s.audit.Log(ctx, actor)

	return q, nil
}

// Recompute replaces the line items and rederives the totals server-side.
// Accepted quotations are frozen.
func (s *Service) Recompute(ctx context.Context, id int64, req RecomputeRequest, actor activity.Entry) (*domain.Quotation, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoLineItems
	}

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	if q.Status == domain.QuotationAccepted {
		return nil, ErrNotEditable
	}

	items := toLineItems(req.Items)
	subtotal, tax := items.Totals()
	if err := s.repo.UpdateTotals(ctx, id, items, subtotal, tax, subtotal+tax); err != nil {
		return nil, err
	}
	q.LineItems = items
	q.Subtotal = subtotal
	q.Tax = tax
	q.Total = subtotal + tax

	actor.Action = "recomputed"
	actor.EntityType = "quotation"
	actor.EntityID = q.ID
	actor.EntityName = q.Number
	actor.Details = domain.ActivityDetails{"subtotal": subtotal, "tax": tax, "total": subtotal + tax}
	s.audit.Log(ctx, actor)

	return q, nil
}

// OverrideTotals stores caller-supplied totals verbatim. The override and
// its reason are recorded in the activity trail.
func (s *Service) OverrideTotals(ctx context.Context, id int64, req OverrideTotalsRequest, actor activity.Entry) (*domain.Quotation, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuotationNotFound
	}
	if q.Status == domain.QuotationAccepted {
		return nil, ErrNotEditable
	}

	if err := s.repo.UpdateTotals(ctx, id, q.LineItems, req.Subtotal, req.Tax, req.Total); err != nil {
		return nil, err
	}
	q.Subtotal = req.Subtotal
	q.Tax = req.Tax
	q.Total = req.Total

	actor.Action = "totals_overridden"
	actor.EntityType = "quotation"
	actor.EntityID = q.ID
	actor.EntityName = q.Number
	actor.Details = domain.ActivityDetails{
		"subtotal": req.Subtotal,
		"tax":      req.Tax,
		"total":    req.Total,
		"reason":   req.Reason,
	}
	s.audit.Log(ctx, actor)

	return q, nil
}
