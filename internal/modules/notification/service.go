package notification

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dealershub/internal/domain"
)

type Service struct {
	repo   NotificationRepository
	users  UserDirectory
	mailer Mailer
	stream Streamer
	log    zerolog.Logger
}

func NewService(repo NotificationRepository, users UserDirectory, mailer Mailer, stream Streamer, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		mailer: mailer,
		stream: stream,
		log:    log,
	}
}

// Create inserts one notification row for the user. When sendEmail is set and
// a transport is configured the email goes out best-effort: a send failure is
// logged and never rolls back the notification.
func (s *Service) Create(ctx context.Context, userID int64, p Payload, sendEmail bool) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:    userID,
		Type:      p.Type,
		Title:     p.Title,
		Message:   p.Message,
		Link:      p.Link,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.stream != nil {
		s.stream.Push(userID, n)
	}

	if sendEmail && s.mailer != nil {
		if user, err := s.users.GetByID(ctx, userID); err == nil && user != nil {
			if err := s.mailer.Send(user.Email, p.Title, p.Message); err != nil {
				s.log.Warn().Err(err).Int64("user_id", userID).Msg("notification email failed")
			}
		}
	}

	return n, nil
}

// NotifyUsers fans the payload out to each user id.
func (s *Service) NotifyUsers(ctx context.Context, userIDs []int64, p Payload, sendEmail bool) error {
	for _, id := range userIDs {
		if _, err := s.Create(ctx, id, p, sendEmail); err != nil {
			return err
		}
	}
	return nil
}

// NotifyByRole resolves every active user holding the role and fans out.
func (s *Service) NotifyByRole(ctx context.Context, role domain.Role, p Payload, sendEmail bool) error {
	users, err := s.users.ListByRoles(ctx, role)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return s.NotifyUsers(ctx, ids, p, sendEmail)
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}
