package service

import (
	"context"
	"errors"
	"testing"

	ordersdomain "backoffice-api/internal/features/orders/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of the orders repository port.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]ordersdomain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordersdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) Search(ctx context.Context, term string) ([]ordersdomain.Order, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordersdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordersdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*ordersdomain.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordersdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) ItemsFor(ctx context.Context, orderID string) ([]ordersdomain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordersdomain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, id string, status ordersdomain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestCustomerService_List(t *testing.T) {
	ctx := context.Background()

	orders := []ordersdomain.Order{
		{CustomerEmail: "a@x.com", CustomerName: "Ada", Total: decimal.NewFromInt(10)},
		{CustomerEmail: "b@y.com", CustomerName: "Bram", Total: decimal.NewFromInt(20)},
		{CustomerEmail: "a@x.com", CustomerName: "Ada", Total: decimal.NewFromInt(15)},
	}

	t.Run("Aggregates", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewCustomerService(mockRepo)

		mockRepo.On("List", ctx).Return(orders, nil).Once()

		customers, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, customers, 2)

		assert.Equal(t, "a@x.com", customers[0].Email)
		assert.Equal(t, 2, customers[0].OrderCount)
		assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, "b@y.com", customers[1].Email)
		assert.Equal(t, 1, customers[1].OrderCount)
	})

	t.Run("Filter", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewCustomerService(mockRepo)

		mockRepo.On("List", ctx).Return(orders, nil).Once()

		customers, err := svc.List(ctx, "bram")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "b@y.com", customers[0].Email)
	})

	t.Run("EmptyOrders", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewCustomerService(mockRepo)

		mockRepo.On("List", ctx).Return([]ordersdomain.Order{}, nil).Once()

		customers, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewCustomerService(mockRepo)

		mockRepo.On("List", ctx).Return(nil, errors.New("store down")).Once()

		_, err := svc.List(ctx, "")
		assert.Error(t, err)
	})
}
