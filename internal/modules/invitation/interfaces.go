package invitation

import (
	"context"

	"dealershub/internal/domain"
)

// InvitationRepository defines invitation data access.
type InvitationRepository interface {
	Create(ctx context.Context, i *domain.Invitation) error
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	FindPendingByEmail(ctx context.Context, email string) (*domain.Invitation, error)
	Update(ctx context.Context, i *domain.Invitation) error
	List(ctx context.Context, limit, offset int) ([]domain.Invitation, int64, error)
}

// UserStore checks for existing accounts and creates the invited one.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// TxRunner wraps a multi-step workflow in one transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer is the outbound email transport; nil disables delivery.
type Mailer interface {
	Send(to, subject, body string) error
}

// TokenIssuer mints a session token for the freshly created user.
type TokenIssuer interface {
	GenerateToken(userID int64, userName string, role string) (string, error)
}
