package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-api/internal/features/orders/domain"
	ordersservice "backoffice-api/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func setupApp(repo *MockOrderRepository) *fiber.App {
	app := fiber.New()
	h := NewOrderHandler(ordersservice.NewOrderService(repo))
	app.Get("/orders", h.ListOrders)
	app.Get("/orders/:id", h.GetOrder)
	app.Patch("/orders/:id/status", h.UpdateStatus)
	return app
}

func TestOrderHandler_ListOrders(t *testing.T) {
	repo := new(MockOrderRepository)
	app := setupApp(repo)

	repo.On("List", mock.Anything).Return([]domain.Order{{ID: "1", OrderNumber: "ORD-0001"}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-0001", orders[0].OrderNumber)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		app := setupApp(repo)

		order := &domain.Order{ID: "42", Status: domain.StatusShipped}
		repo.On("GetByID", mock.Anything, "42").Return(order, nil).Once()
		repo.On("ItemsFor", mock.Anything, "42").Return([]domain.OrderItem{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/orders/42", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var detail OrderDetail
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
		assert.Equal(t, []bool{true, true, false, false}, detail.Stages)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockOrderRepository)
		app := setupApp(repo)

		repo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/orders/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		app := setupApp(repo)

		before := &domain.Order{ID: "42", Status: domain.StatusProcessing}
		after := &domain.Order{ID: "42", Status: domain.StatusCancelled}
		repo.On("GetByID", mock.Anything, "42").Return(before, nil).Once()
		repo.On("SetStatus", mock.Anything, "42", domain.StatusCancelled).Return(nil).Once()
		repo.On("GetByID", mock.Anything, "42").Return(after, nil).Once()

		body, _ := json.Marshal(UpdateStatusRequest{Status: domain.StatusCancelled})
		req := httptest.NewRequest("PATCH", "/orders/42/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var updated domain.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		assert.Equal(t, domain.StatusCancelled, updated.Status)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		repo := new(MockOrderRepository)
		app := setupApp(repo)

		body, _ := json.Marshal(UpdateStatusRequest{Status: "teleported"})
		req := httptest.NewRequest("PATCH", "/orders/42/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
