package service

import (
	"context"
	"errors"
	"testing"

	"backoffice-api/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of ports.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Search(ctx context.Context, term string) ([]domain.Order, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ItemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		expected := []domain.Order{{ID: "1"}, {ID: "2"}}
		mockRepo.On("List", ctx).Return(expected, nil).Once()

		orders, err := svc.List(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, expected, orders)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Search", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		expected := []domain.Order{{ID: "1", OrderNumber: "ORD-0001"}}
		mockRepo.On("Search", ctx, "ORD-0001").Return(expected, nil).Once()

		orders, err := svc.List(ctx, "  ORD-0001  ")
		assert.NoError(t, err)
		assert.Equal(t, expected, orders)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		mockRepo.On("List", ctx).Return(nil, errors.New("store down")).Once()

		_, err := svc.List(ctx, "")
		assert.Error(t, err)
	})
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		order := &domain.Order{ID: "42", OrderNumber: "ORD-0042"}
		items := []domain.OrderItem{{ID: "i1", OrderID: "42", ProductName: "Mug", Quantity: 2}}
		mockRepo.On("GetByID", ctx, "42").Return(order, nil).Once()
		mockRepo.On("ItemsFor", ctx, "42").Return(items, nil).Once()

		got, gotItems, err := svc.Get(ctx, "42")
		assert.NoError(t, err)
		assert.Equal(t, order, got)
		assert.Equal(t, items, gotItems)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		mockRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

		_, _, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		before := &domain.Order{ID: "42", Status: domain.StatusProcessing}
		after := &domain.Order{ID: "42", Status: domain.StatusShipped}
		mockRepo.On("GetByID", ctx, "42").Return(before, nil).Once()
		mockRepo.On("SetStatus", ctx, "42", domain.StatusShipped).Return(nil).Once()
		mockRepo.On("GetByID", ctx, "42").Return(after, nil).Once()

		updated, err := svc.UpdateStatus(ctx, "42", domain.StatusShipped)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, updated.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("BackwardMoveAllowed", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		before := &domain.Order{ID: "42", Status: domain.StatusDelivered}
		after := &domain.Order{ID: "42", Status: domain.StatusProcessing}
		mockRepo.On("GetByID", ctx, "42").Return(before, nil).Once()
		mockRepo.On("SetStatus", ctx, "42", domain.StatusProcessing).Return(nil).Once()
		mockRepo.On("GetByID", ctx, "42").Return(after, nil).Once()

		updated, err := svc.UpdateStatus(ctx, "42", domain.StatusProcessing)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, updated.Status)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		_, err := svc.UpdateStatus(ctx, "42", domain.Status("misplaced"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		mockRepo.AssertNotCalled(t, "SetStatus")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo)

		mockRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, "missing", domain.StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
