package activity

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
	"dealershub/internal/repository"
)

// Entry is one audit fact to record.
type Entry struct {
	UserID     *int64
	UserName   string
	Action     string
	EntityType string
	EntityID   int64
	EntityName string
	Details    domain.ActivityDetails
}

type Service struct {
	repo ActivityRepository
	log  zerolog.Logger
}

func NewService(repo ActivityRepository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Log appends one audit row. It never returns an error: a degraded audit
// trail must not block the business operation that triggered it, so failures
// are only logged.
func (s *Service) Log(ctx context.Context, e Entry) {
	row := &domain.ActivityLog{
		UserID:     e.UserID,
		UserName:   e.UserName,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		EntityName: e.EntityName,
		Details:    e.Details,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.log.Warn().
			Err(err).
			Str("action", e.Action).
			Str("entity_type", e.EntityType).
			Int64("entity_id", e.EntityID).
			Msg("activity log insert failed")
	}
}

// List returns the most recent entries, newest first.
func (s *Service) List(ctx context.Context, f repository.ActivityFilter) ([]domain.ActivityLog, int64, error) {
	return s.repo.List(ctx, f)
}
