package inventory

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dealershub/internal/domain"
	"dealershub/internal/modules/notification"
)

// Mock repositories
type MockSparePartRepository struct {
	mock.Mock
}

func (m *MockSparePartRepository) Create(ctx context.Context, p *domain.SparePart) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockSparePartRepository) GetByID(ctx context.Context, id int64) (*domain.SparePart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SparePart), args.Error(1)
}

func (m *MockSparePartRepository) UpdateStock(ctx context.Context, id int64, stock int64) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}

func (m *MockSparePartRepository) List(ctx context.Context, limit, offset int) ([]domain.SparePart, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.SparePart), args.Get(1).(int64), args.Error(2)
}

func (m *MockSparePartRepository) ListLowStock(ctx context.Context) ([]domain.SparePart, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SparePart), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyByRole(ctx context.Context, role domain.Role, p notification.Payload, sendEmail bool) error {
	args := m.Called(ctx, role, p, sendEmail)
	return args.Error(0)
}

func TestDeduct_NormalMovement(t *testing.T) {
	mockParts := new(MockSparePartRepository)
	mockNotifs := new(MockNotifier)

	mockParts.On("GetByID", mock.Anything, int64(7)).Return(&domain.SparePart{
		ID: 7, Name: "Oil Filter", Stock: 10, ReorderPoint: 2,
	}, nil)
	mockParts.On("UpdateStock", mock.Anything, int64(7), int64(8)).Return(nil)

	service := NewService(mockParts, mockNotifs, zerolog.Nop())

	out, err := service.Deduct(context.Background(), []Item{{PartID: 7, Quantity: 2}})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(8), out[0].StockAfter)
	assert.Equal(t, int64(2), out[0].Deducted)
	assert.False(t, out[0].LowStock)
	mockNotifs.AssertNotCalled(t, "NotifyByRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeduct_ClampsAtZero(t *testing.T) {
	mockParts := new(MockSparePartRepository)
	mockNotifs := new(MockNotifier)

	mockParts.On("GetByID", mock.Anything, int64(7)).Return(&domain.SparePart{
		ID: 7, Name: "Oil Filter", Stock: 3, ReorderPoint: 2,
	}, nil)
	mockParts.On("UpdateStock", mock.Anything, int64(7), int64(0)).Return(nil)
	mockNotifs.On("NotifyByRole", mock.Anything, domain.RoleAdmin, mock.Anything, false).Return(nil)

	service := NewService(mockParts, mockNotifs, zerolog.Nop())

	out, err := service.Deduct(context.Background(), []Item{{PartID: 7, Quantity: 10}})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), out[0].StockAfter)
	assert.Equal(t, int64(3), out[0].Deducted)
	assert.True(t, out[0].LowStock)
}

func TestDeduct_LowStockAlertAtReorderPoint(t *testing.T) {
	mockParts := new(MockSparePartRepository)
	mockNotifs := new(MockNotifier)

	// 5 - 2 = 3 which is at or below the reorder point of 4.
	mockParts.On("GetByID", mock.Anything, int64(7)).Return(&domain.SparePart{
		ID: 7, Name: "Oil Filter", Stock: 5, ReorderPoint: 4,
	}, nil)
	mockParts.On("UpdateStock", mock.Anything, int64(7), int64(3)).Return(nil)
	mockNotifs.On("NotifyByRole", mock.Anything, domain.RoleAdmin, mock.Anything, false).Return(nil)

	service := NewService(mockParts, mockNotifs, zerolog.Nop())

	out, err := service.Deduct(context.Background(), []Item{{PartID: 7, Quantity: 2}})

	assert.NoError(t, err)
	assert.True(t, out[0].LowStock)
	mockNotifs.AssertExpectations(t)
}

func TestDeduct_UnknownPart(t *testing.T) {
	mockParts := new(MockSparePartRepository)
	mockParts.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	service := NewService(mockParts, new(MockNotifier), zerolog.Nop())

	_, err := service.Deduct(context.Background(), []Item{{PartID: 404, Quantity: 1}})

	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestDeduct_NonPositiveQuantity(t *testing.T) {
	service := NewService(new(MockSparePartRepository), new(MockNotifier), zerolog.Nop())

	_, err := service.Deduct(context.Background(), []Item{{PartID: 7, Quantity: 0}})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRestore_AddsStockBack(t *testing.T) {
	mockParts := new(MockSparePartRepository)

	mockParts.On("GetByID", mock.Anything, int64(7)).Return(&domain.SparePart{
		ID: 7, Stock: 3,
	}, nil)
	mockParts.On("UpdateStock", mock.Anything, int64(7), int64(5)).Return(nil)

	service := NewService(mockParts, new(MockNotifier), zerolog.Nop())

	err := service.Restore(context.Background(), []Item{{PartID: 7, Quantity: 2}})

	assert.NoError(t, err)
	mockParts.AssertExpectations(t)
}

func TestCreatePart_Validation(t *testing.T) {
	service := NewService(new(MockSparePartRepository), new(MockNotifier), zerolog.Nop())

	err := service.CreatePart(context.Background(), &domain.SparePart{Name: "No SKU"})

	assert.ErrorIs(t, err, ErrValidation)
}
