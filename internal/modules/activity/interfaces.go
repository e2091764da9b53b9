package activity

import (
	"context"

	"dealershub/internal/domain"
	"dealershub/internal/repository"
)

// ActivityRepository defines the audit-trail data access.
type ActivityRepository interface {
	Create(ctx context.Context, e *domain.ActivityLog) error
	List(ctx context.Context, f repository.ActivityFilter) ([]domain.ActivityLog, int64, error)
}
