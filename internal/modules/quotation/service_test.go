package quotation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/repository"
)

// Mock repositories
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	if q != nil {
		q.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockQuotationRepository) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) NextNumber(ctx context.Context, now time.Time) (string, error) {
	args := m.Called(ctx, now)
	return args.String(0), args.Error(1)
}

func (m *MockQuotationRepository) UpdateStatus(ctx context.Context, id int64, status domain.QuotationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockQuotationRepository) UpdateTotals(ctx context.Context, id int64, lineItems domain.LineItems, subtotal, tax, total int64) error {
	args := m.Called(ctx, id, lineItems, subtotal, tax, total)
	return args.Error(0)
}

func (m *MockQuotationRepository) List(ctx context.Context, f repository.QuotationFilter) ([]domain.Quotation, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Quotation), args.Get(1).(int64), args.Error(2)
}

type MockLeadReader struct {
	mock.Mock
}

func (m *MockLeadReader) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
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

func newTestService(repo *MockQuotationRepository, leads *MockLeadReader) *Service {
	auditRepo := new(MockActivityRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	audit := activity.NewService(auditRepo, zerolog.Nop())
	return NewService(repo, leads, fakeTx{}, audit, zerolog.Nop())
}

func TestLineItems_Totals(t *testing.T) {
	items := domain.LineItems{
		{Description: "Vehicle", Amount: 100000, TaxRate: 18},
		{Description: "Accessories", Amount: 5000, TaxRate: 0},
	}

	subtotal, tax := items.Totals()

	assert.Equal(t, int64(105000), subtotal)
	assert.Equal(t, int64(18000), tax)
}

func TestCreate_ComputesTotalsServerSide(t *testing.T) {
	mockRepo := new(MockQuotationRepository)
	mockLeads := new(MockLeadReader)

	mockRepo.On("NextNumber", mock.Anything, mock.Anything).Return("QT-2026-001", nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockRepo, mockLeads)

	q, err := service.Create(context.Background(), CreateQuotationRequest{
		Customer: "Asha Rao",
		Vehicle:  "Model X",
		Items: []LineItemRequest{
			{Description: "Vehicle", Amount: 100000, TaxRate: 18},
			{Description: "Accessories", Amount: 5000, TaxRate: 0},
		},
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, "QT-2026-001", q.Number)
	assert.Equal(t, int64(105000), q.Subtotal)
	assert.Equal(t, int64(18000), q.Tax)
	assert.Equal(t, int64(123000), q.Total)
	assert.Equal(t, domain.QuotationDraft, q.Status)
	mockRepo.AssertExpectations(t)
}

func TestCreate_RetriesOnDuplicateNumber(t *testing.T) {
	mockRepo := new(MockQuotationRepository)
	mockLeads := new(MockLeadReader)

	mockRepo.On("NextNumber", mock.Anything, mock.Anything).Return("QT-2026-007", nil)
	// First insert loses the race on the unique number index.
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	service := newTestService(mockRepo, mockLeads)

	q, err := service.Create(context.Background(), CreateQuotationRequest{
		Customer: "Asha Rao",
		Vehicle:  "Model X",
		Items:    []LineItemRequest{{Description: "Vehicle", Amount: 1000, TaxRate: 0}},
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), q.Total)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreate_UnknownLead(t *testing.T) {
	mockRepo := new(MockQuotationRepository)
	mockLeads := new(MockLeadReader)

	leadID := int64(404)
	mockLeads.On("GetByID", mock.Anything, leadID).Return(nil, nil)

	service := newTestService(mockRepo, mockLeads)

	_, err := service.Create(context.Background(), CreateQuotationRequest{
		LeadID:   &leadID,
		Customer: "Asha Rao",
		Vehicle:  "Model X",
		Items:    []LineItemRequest{{Description: "Vehicle", Amount: 1000}},
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestCreate_NoLineItems(t *testing.T) {
	service := newTestService(new(MockQuotationRepository), new(MockLeadReader))

	_, err := service.Create(context.Background(), CreateQuotationRequest{
		Customer: "Asha Rao",
		Vehicle:  "Model X",
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrNoLineItems)
}

func TestSend_DraftOnly(t *testing.T) {
	mockRepo := new(MockQuotationRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Quotation{
		ID: 1, Number: "QT-2026-001", Status: domain.QuotationSent,
	}, nil)

	service := newTestService(mockRepo, new(MockLeadReader))

	_, err := service.Send(context.Background(), 1, activity.Entry{})

	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestRecompute_ReplacesItemsAndTotals(t *testing.T) {
	mockRepo := new(MockQuotationRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Quotation{
		ID: 1, Number: "QT-2026-001", Status: domain.QuotationDraft,
		Subtotal: 100, Tax: 0, Total: 100,
	}, nil)
	mockRepo.On("UpdateTotals", mock.Anything, int64(1), mock.Anything,
		int64(2000), int64(360), int64(2360)).Return(nil)

	service := newTestService(mockRepo, new(MockLeadReader))

	q, err := service.Recompute(context.Background(), 1, RecomputeRequest{
		Items: []LineItemRequest{{Description: "Vehicle", Amount: 2000, TaxRate: 18}},
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, int64(2360), q.Total)
	mockRepo.AssertExpectations(t)
}

func TestRecompute_AcceptedIsFrozen(t *testing.T) {
	mockRepo := new(MockQuotationRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Quotation{
		ID: 1, Status: domain.QuotationAccepted,
	}, nil)

	service := newTestService(mockRepo, new(MockLeadReader))

	_, err := service.Recompute(context.Background(), 1, RecomputeRequest{
		Items: []LineItemRequest{{Description: "Vehicle", Amount: 2000}},
	}, activity.Entry{})

	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestOverrideTotals_StoresAsGiven(t *testing.T) {
	mockRepo := new(MockQuotationRepository)

	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Quotation{
		ID: 1, Number: "QT-2026-001", Status: domain.QuotationDraft,
	}, nil)
	mockRepo.On("UpdateTotals", mock.Anything, int64(1), mock.Anything,
		int64(90000), int64(10000), int64(100000)).Return(nil)

	service := newTestService(mockRepo, new(MockLeadReader))

	q, err := service.OverrideTotals(context.Background(), 1, OverrideTotalsRequest{
		Subtotal: 90000, Tax: 10000, Total: 100000, Reason: "fleet discount",
	}, activity.Entry{})

	assert.NoError(t, err)
	assert.Equal(t, int64(100000), q.Total)
	mockRepo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	mockRepo := new(MockQuotationRepository)
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := newTestService(mockRepo, new(MockLeadReader))

	_, err := service.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrQuotationNotFound)
}
