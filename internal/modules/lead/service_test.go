package lead

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/notification"
	"dealershub/internal/repository"
)

// Mock repositories
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Lead, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, f repository.LeadFilter) ([]domain.Lead, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, roles)
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Create(ctx context.Context, userID int64, p notification.Payload, sendEmail bool) (*domain.Notification, error) {
	args := m.Called(ctx, userID, p, sendEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
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

// fakeTx runs the callback without a real transaction.
type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *MockLeadRepository, users *MockUserDirectory, notifs *MockNotifier) *Service {
	auditRepo := new(MockActivityRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	audit := activity.NewService(auditRepo, zerolog.Nop())
	return NewService(repo, users, fakeTx{}, notifs, audit, zerolog.Nop())
}

func TestScore_ReferralWithAllSignals(t *testing.T) {
	vi := &domain.VehicleInterest{Model: "X"}
	score := Score("9876543210", "asha@x.com", "Referral", vi)

	assert.Equal(t, 100, score)
	assert.Equal(t, domain.LeadHot, TemperatureFor(score))
}

func TestScore_MinimalLead(t *testing.T) {
	score := Score("12345", "", "Walk-in", nil)

	assert.Equal(t, 30, score)
	assert.Equal(t, domain.LeadCold, TemperatureFor(score))
}

func TestTemperatureFor_Boundaries(t *testing.T) {
	assert.Equal(t, domain.LeadHot, TemperatureFor(80))
	assert.Equal(t, domain.LeadWarm, TemperatureFor(79))
	assert.Equal(t, domain.LeadWarm, TemperatureFor(50))
	assert.Equal(t, domain.LeadCold, TemperatureFor(49))
}

func TestCreate_ScoresAndAssigns(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockUsers := new(MockUserDirectory)
	mockNotifs := new(MockNotifier)

	mockRepo.On("FindByEmailOrPhone", mock.Anything, "asha@x.com", "9876543210").Return(nil, nil)
	mockUsers.On("ListByRoles", mock.Anything, mock.Anything).Return([]domain.User{
		{ID: 7, Role: domain.RoleSales},
	}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("Create", mock.Anything, int64(7), mock.Anything, false).Return(&domain.Notification{}, nil)

	service := newTestService(mockRepo, mockUsers, mockNotifs)

	l, err := service.Create(context.Background(), CreateLeadRequest{
		Name:            "Asha Rao",
		Phone:           "9876543210",
		Email:           "asha@x.com",
		Source:          "Referral",
		VehicleInterest: &domain.VehicleInterest{Model: "X"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, l.Score)
	assert.Equal(t, domain.LeadHot, l.Temperature)
	assert.Equal(t, domain.LeadNew, l.Status)
	assert.Equal(t, "Initial Follow-up", l.NextAction)
	assert.NotNil(t, l.AssignedTo)
	assert.Equal(t, int64(7), *l.AssignedTo)
	mockRepo.AssertExpectations(t)
}

func TestCreate_Duplicate(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockUsers := new(MockUserDirectory)
	mockNotifs := new(MockNotifier)

	mockRepo.On("FindByEmailOrPhone", mock.Anything, "asha@x.com", "9876543210").
		Return(&domain.Lead{ID: 11}, nil)

	service := newTestService(mockRepo, mockUsers, mockNotifs)

	_, err := service.Create(context.Background(), CreateLeadRequest{
		Name:  "Asha Rao",
		Phone: "9876543210",
		Email: "asha@x.com",
	})

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(11), dup.ExistingID)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_NoAssignableUsers(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockUsers := new(MockUserDirectory)
	mockNotifs := new(MockNotifier)

	mockRepo.On("FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockUsers.On("ListByRoles", mock.Anything, mock.Anything).Return([]domain.User{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockRepo, mockUsers, mockNotifs)

	l, err := service.Create(context.Background(), CreateLeadRequest{
		Name:  "Walk In",
		Phone: "5550100",
		Email: "walkin@x.com",
	})

	assert.NoError(t, err)
	assert.Nil(t, l.AssignedTo)
	mockNotifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_MissingFields(t *testing.T) {
	service := newTestService(new(MockLeadRepository), new(MockUserDirectory), new(MockNotifier))

	_, err := service.Create(context.Background(), CreateLeadRequest{Name: "No Contact"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Lead{
		ID: 1, Name: "Asha Rao", Status: domain.LeadNew,
	}, nil)
	mockRepo.On("UpdateStatus", mock.Anything, int64(1), domain.LeadContacted).Return(nil)

	service := newTestService(mockRepo, new(MockUserDirectory), new(MockNotifier))

	l, err := service.UpdateStatus(context.Background(), 1, domain.LeadContacted, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, l.Status)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_WonIsReservedForBookings(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Lead{
		ID: 1, Status: domain.LeadNegotiation,
	}, nil)

	service := newTestService(mockRepo, new(MockUserDirectory), new(MockNotifier))

	_, err := service.UpdateStatus(context.Background(), 1, domain.LeadWon, activity.Entry{})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_SkippingStagesRejected(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Lead{
		ID: 1, Status: domain.LeadNew,
	}, nil)

	service := newTestService(mockRepo, new(MockUserDirectory), new(MockNotifier))

	_, err := service.UpdateStatus(context.Background(), 1, domain.LeadNegotiation, activity.Entry{})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := newTestService(mockRepo, new(MockUserDirectory), new(MockNotifier))

	_, err := service.UpdateStatus(context.Background(), 99, domain.LeadContacted, activity.Entry{})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}
