package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
)

// Item is one stock movement request.
type Item struct {
	PartID   int64 `json:"part_id"`
	Quantity int64 `json:"quantity"`
}

// StockAfter reports the result of one deduction.
type StockAfter struct {
	PartID     int64  `json:"part_id"`
	Name       string `json:"name"`
	Deducted   int64  `json:"deducted"`
	StockAfter int64  `json:"stock_after"`
	LowStock   bool   `json:"low_stock"`
}

type Service struct {
	parts  SparePartRepository
	notifs Notifier
	log    zerolog.Logger
}

func NewService(parts SparePartRepository, notifs Notifier, log zerolog.Logger) *Service {
	return &Service{parts: parts, notifs: notifs, log: log}
}

// Deduct applies each stock movement, clamping at zero. It is the single
// stock-consuming routine shared by every workflow; callers run it inside
// their transaction so a later failure rolls the stock back too. A part at or
// below its reorder point after deduction raises a low-stock alert to admins.
func (s *Service) Deduct(ctx context.Context, items []Item) ([]StockAfter, error) {
	out := make([]StockAfter, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrValidation
		}

		part, err := s.parts.GetByID(ctx, it.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, ErrPartNotFound
		}

		newStock := part.Stock - it.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.parts.UpdateStock(ctx, part.ID, newStock); err != nil {
			return nil, err
		}

		low := newStock <= part.ReorderPoint
		out = append(out, StockAfter{
			PartID:     part.ID,
			Name:       part.Name,
			Deducted:   part.Stock - newStock,
			StockAfter: newStock,
			LowStock:   low,
		})

		if low && s.notifs != nil {
			if err := s.notifs.NotifyByRole(ctx, domain.RoleAdmin, notification.LowStock(part.Name, newStock, part.ID), false); err != nil {
				s.log.Warn().Err(err).Int64("part_id", part.ID).Msg("low-stock alert failed")
			}
		}
	}
	return out, nil
}

// Restore adds stock back, the inverse of Deduct.
func (s *Service) Restore(ctx context.Context, items []Item) error {
	for _, it := range items {
		if it.Quantity <= 0 {
			return ErrValidation
		}

		part, err := s.parts.GetByID(ctx, it.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return ErrPartNotFound
		}

		if err := s.parts.UpdateStock(ctx, part.ID, part.Stock+it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) CreatePart(ctx context.Context, p *domain.SparePart) error {
	if p.SKU == "" || p.Name == "" {
		return ErrValidation
	}
	if p.Stock < 0 || p.ReorderPoint < 0 {
		return ErrValidation
	}
	return s.parts.Create(ctx, p)
}

func (s *Service) GetPart(ctx context.Context, id int64) (*domain.SparePart, error) {
	part, err := s.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartNotFound
	}
	return part, nil
}

func (s *Service) ListParts(ctx context.Context, limit, offset int) ([]domain.SparePart, int64, error) {
	return s.parts.List(ctx, limit, offset)
}

func (s *Service) ListLowStock(ctx context.Context) ([]domain.SparePart, error) {
	return s.parts.ListLowStock(ctx)
}
