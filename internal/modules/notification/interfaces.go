package notification

import (
	"context"

	"dealershub/internal/domain"
)

// NotificationRepository defines notification data access.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// UserDirectory resolves recipients for fan-out and email delivery.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
}

// Mailer is the outbound email transport. A nil Mailer means email is not
// configured; delivery is always best-effort.
type Mailer interface {
	Send(to, subject, body string) error
}

// Streamer pushes a freshly created notification to any live client
// connection of the recipient.
type Streamer interface {
	Push(userID int64, n *domain.Notification)
}
