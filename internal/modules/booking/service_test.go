package booking

import (
	"context"
	"errors"
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
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 99 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

type MockQuotationStore struct {
	mock.Mock
}

func (m *MockQuotationStore) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationStore) UpdateStatus(ctx context.Context, id int64, status domain.QuotationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadStore) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
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

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *MockBookingRepository, quotations *MockQuotationStore, leads *MockLeadStore, notifs *MockNotifier) *Service {
	auditRepo := new(MockActivityRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	audit := activity.NewService(auditRepo, zerolog.Nop())
	return NewService(repo, quotations, leads, fakeTx{}, notifs, audit, zerolog.Nop())
}

func TestCreate_FlipsQuotationAndLead(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockQuotations := new(MockQuotationStore)
	mockLeads := new(MockLeadStore)
	mockNotifs := new(MockNotifier)

	leadID, quotationID := int64(3), int64(5)
	assignee := int64(7)

	mockQuotations.On("GetByID", mock.Anything, quotationID).Return(&domain.Quotation{
		ID: quotationID, Status: domain.QuotationSent,
	}, nil)
	mockLeads.On("GetByID", mock.Anything, leadID).Return(&domain.Lead{
		ID: leadID, Status: domain.LeadNegotiation, AssignedTo: &assignee,
	}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockQuotations.On("UpdateStatus", mock.Anything, quotationID, domain.QuotationAccepted).Return(nil)
	mockLeads.On("UpdateStatus", mock.Anything, leadID, domain.LeadWon).Return(nil)
	mockNotifs.On("Create", mock.Anything, assignee, mock.Anything, false).Return(&domain.Notification{}, nil)

	service := newTestService(mockRepo, mockQuotations, mockLeads, mockNotifs)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		LeadID:      &leadID,
		QuotationID: &quotationID,
		Customer:    "Asha Rao",
		Vehicle:     "Model X",
		Amount:      123000,
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	mockQuotations.AssertExpectations(t)
	mockLeads.AssertExpectations(t)
}

func TestCreate_LeadFlipFailureRollsBack(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockQuotations := new(MockQuotationStore)
	mockLeads := new(MockLeadStore)

	leadID := int64(3)
	mockLeads.On("GetByID", mock.Anything, leadID).Return(&domain.Lead{ID: leadID}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeads.On("UpdateStatus", mock.Anything, leadID, domain.LeadWon).
		Return(errors.New("connection reset"))

	service := newTestService(mockRepo, mockQuotations, mockLeads, new(MockNotifier))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		LeadID:   &leadID,
		Customer: "Asha Rao",
		Vehicle:  "Model X",
		Amount:   1000,
	}, activity.Entry{})

	assert.Error(t, err)
}

func TestCreate_ZeroAmountRejected(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockQuotationStore), new(MockLeadStore), new(MockNotifier))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		Customer: "Asha Rao",
		Vehicle:  "Model X",
		Amount:   0,
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreate_UnknownQuotation(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockQuotations := new(MockQuotationStore)

	quotationID := int64(404)
	mockQuotations.On("GetByID", mock.Anything, quotationID).Return(nil, nil)

	service := newTestService(mockRepo, mockQuotations, new(MockLeadStore), new(MockNotifier))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		QuotationID: &quotationID,
		Customer:    "Asha Rao",
		Vehicle:     "Model X",
		Amount:      1000,
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrQuotationNotFound)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	mockRepo := new(MockBookingRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Customer: "Asha Rao", PaymentStatus: domain.PaymentPending,
	}, nil)
	mockRepo.On("UpdateFields", mock.Anything, int64(1), map[string]any{
		"payment_status": domain.PaymentPaid,
	}).Return(nil)

	service := newTestService(mockRepo, new(MockQuotationStore), new(MockLeadStore), new(MockNotifier))

	paid := domain.PaymentPaid
	b, err := service.Update(context.Background(), 1, UpdateBookingRequest{
		PaymentStatus: &paid,
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	mockRepo := new(MockBookingRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1}, nil)

	service := newTestService(mockRepo, new(MockQuotationStore), new(MockLeadStore), new(MockNotifier))

	_, err := service.Update(context.Background(), 1, UpdateBookingRequest{}, activity.Entry{})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
