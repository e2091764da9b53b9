package invitation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/repository"
)

// Mock repositories
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, i *domain.Invitation) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 21 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockInvitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindPendingByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) Update(ctx context.Context, i *domain.Invitation) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvitationRepository) List(ctx context.Context, limit, offset int) ([]domain.Invitation, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Invitation), args.Get(1).(int64), args.Error(2)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 8 // simulate DB insert
	}
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, userName string, role string) (string, error) {
	args := m.Called(userID, userName, role)
	return args.String(0), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, e *domain.ActivityLog) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, f repository.ActivityFilter) ([]domain.ActivityLog, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.ActivityLog), args.Get(1).(int64), args.Error(2)
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *MockInvitationRepository, users *MockUserStore, mailer Mailer, tokens *MockTokenIssuer) *Service {
	auditRepo := new(MockActivityRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	audit := activity.NewService(auditRepo, zerolog.Nop())
	return NewService(repo, users, fakeTx{}, mailer, tokens, audit, "http://localhost:8080", zerolog.Nop())
}

func TestCreate_IssuesPendingInvitation(t *testing.T) {
	mockRepo := new(MockInvitationRepository)
	mockUsers := new(MockUserStore)
	mockMailer := new(MockMailer)

	mockUsers.On("GetByEmail", mock.Anything, "new@x.com").Return(nil, nil)
	mockRepo.On("FindPendingByEmail", mock.Anything, "new@x.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockMailer.On("Send", "new@x.com", "You have been invited", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "/invitations/accept?token=")
	})).Return(nil)

	service := newTestService(mockRepo, mockUsers, mockMailer, new(MockTokenIssuer))

	inv, err := service.Create(context.Background(), CreateInvitationRequest{
		Email: "new@x.com",
		Role:  domain.RoleSales,
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvitationPending, inv.Status)
	assert.NotEmpty(t, inv.Token)
	assert.True(t, inv.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))
	mockMailer.AssertExpectations(t)
}

func TestCreate_PendingDuplicateRejected(t *testing.T) {
	mockRepo := new(MockInvitationRepository)
	mockUsers := new(MockUserStore)

	mockUsers.On("GetByEmail", mock.Anything, "new@x.com").Return(nil, nil)
	mockRepo.On("FindPendingByEmail", mock.Anything, "new@x.com").
		Return(&domain.Invitation{ID: 2, Status: domain.InvitationPending}, nil)

	service := newTestService(mockRepo, mockUsers, nil, new(MockTokenIssuer))

	_, err := service.Create(context.Background(), CreateInvitationRequest{
		Email: "new@x.com",
		Role:  domain.RoleSales,
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrPendingExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConsume_CreatesUserAndAccepts(t *testing.T) {
	mockRepo := new(MockInvitationRepository)
	mockUsers := new(MockUserStore)
	mockTokens := new(MockTokenIssuer)

	mockRepo.On("GetByToken", mock.Anything, "tok-1").Return(&domain.Invitation{
		ID: 21, Email: "new@x.com", Role: domain.RoleService,
		Status: domain.InvitationPending, ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	mockUsers.On("GetByEmail", mock.Anything, "new@x.com").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.Invitation) bool {
		return i.Status == domain.InvitationAccepted && i.AcceptedAt != nil
	})).Return(nil)
	mockTokens.On("GenerateToken", int64(8), "New User", "service").Return("jwt-abc", nil)

	service := newTestService(mockRepo, mockUsers, nil, mockTokens)

	res, err := service.Consume(context.Background(), ConsumeInvitationRequest{
		Token:    "tok-1",
		Name:     "New User",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jwt-abc", res.Token)
	assert.Equal(t, domain.RoleService, res.User.Role)
	assert.True(t, res.User.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("supersecret")))
	mockRepo.AssertExpectations(t)
}

func TestConsume_SecondUseRejected(t *testing.T) {
	mockRepo := new(MockInvitationRepository)
	mockUsers := new(MockUserStore)

	mockRepo.On("GetByToken", mock.Anything, "tok-1").Return(&domain.Invitation{
		ID: 21, Status: domain.InvitationAccepted, ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	service := newTestService(mockRepo, mockUsers, nil, new(MockTokenIssuer))

	_, err := service.Consume(context.Background(), ConsumeInvitationRequest{
		Token: "tok-1", Name: "X", Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrAlreadyAccepted)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConsume_Expired(t *testing.T) {
	mockRepo := new(MockInvitationRepository)

	mockRepo.On("GetByToken", mock.Anything, "tok-1").Return(&domain.Invitation{
		ID: 21, Status: domain.InvitationPending, ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	service := newTestService(mockRepo, new(MockUserStore), nil, new(MockTokenIssuer))

	_, err := service.Consume(context.Background(), ConsumeInvitationRequest{
		Token: "tok-1", Name: "X", Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrExpired)
}

func TestConsume_UnknownToken(t *testing.T) {
	mockRepo := new(MockInvitationRepository)
	mockRepo.On("GetByToken", mock.Anything, "nope").Return(nil, nil)

	service := newTestService(mockRepo, new(MockUserStore), nil, new(MockTokenIssuer))

	_, err := service.Consume(context.Background(), ConsumeInvitationRequest{
		Token: "nope", Name: "X", Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrInvitationNotFound)
}
