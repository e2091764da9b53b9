package invitation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
)

const invitationTTL = 7 * 24 * time.Hour

type Service struct {
	repo    InvitationRepository
	users   UserStore
	tx      TxRunner
	mailer  Mailer
	tokens  TokenIssuer
	audit   *activity.Service
	baseURL string
	log     zerolog.Logger

	now func() time.Time
}

func NewService(repo InvitationRepository, users UserStore, tx TxRunner, mailer Mailer, tokens TokenIssuer, audit *activity.Service, baseURL string, log zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		tx:      tx,
		mailer:  mailer,
		tokens:  tokens,
		audit:   audit,
		baseURL: baseURL,
		log:     log,
		now:     time.Now,
	}
}

// Create issues an invitation with a single-use token valid for seven days.
// At most one pending invitation may exist per email.
func (s *Service) Create(ctx context.Context, req CreateInvitationRequest, actor activity.Entry) (*domain.Invitation, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	pending, err := s.repo.FindPendingByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingExists
	}

	inv := &domain.Invitation{
		Email:     req.Email,
		Role:      req.Role,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(invitationTTL),
		Status:    domain.InvitationPending,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	actor.Action = "invited"
	actor.EntityType = "invitation"
	actor.EntityID = inv.ID
	actor.EntityName = inv.Email
	actor.Details = domain.ActivityDetails{"role": inv.Role}
	s.audit.Log(ctx, actor)

	if s.mailer != nil {
		link := fmt.Sprintf("%s/invitations/accept?token=%s", s.baseURL, inv.Token)
		p := notification.Invited(inv.Role, link)
		body := fmt.Sprintf("%s.\n\nAccept your invitation: %s\n\nThe link expires in 7 days.", p.Message, p.Link)
		if err := s.mailer.Send(inv.Email, p.Title, body); err != nil {
			s.log.Warn().Err(err).Str("email", inv.Email).Msg("invitation email failed")
		}
	}

	return inv, nil
}

// Consume redeems a token exactly once: the flip to accepted and the user
// insert share one transaction. Expired, already accepted and unknown
// tokens each fail distinctly.
func (s *Service) Consume(ctx context.Context, req ConsumeInvitationRequest) (*ConsumeInvitationResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var u *domain.User
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetByToken(ctx, req.Token)
		if err != nil {
			return err
		}
		if inv == nil {
			return ErrInvitationNotFound
		}
		if inv.Status == domain.InvitationAccepted {
			return ErrAlreadyAccepted
		}
		if inv.Expired(s.now()) {
			return ErrExpired
		}

		existing, err := s.users.GetByEmail(ctx, inv.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		u = &domain.User{
			Name:         req.Name,
			Email:        inv.Email,
			Role:         inv.Role,
			PasswordHash: string(hash),
			Active:       true,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return err
		}

		now := s.now()
		inv.Status = domain.InvitationAccepted
		inv.AcceptedAt = &now
		return s.repo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, activity.Entry{
		UserID:     &u.ID,
		UserName:   u.Name,
		Action:     "joined",
		EntityType: "user",
		EntityID:   u.ID,
		EntityName: u.Email,
		Details:    domain.ActivityDetails{"role": u.Role},
	})

	token, err := s.tokens.GenerateToken(u.ID, u.Name, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &ConsumeInvitationResponse{User: u, Token: token}, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Invitation, int64, error) {
	return s.repo.List(ctx, limit, offset)
}
