package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice-api/internal/core/cache"
	"backoffice-api/internal/core/flash"
	"backoffice-api/internal/features/notifications/domain"
	"backoffice-api/internal/features/notifications/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotificationRepository is a mock implementation of the notification repository port.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Insert(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupApp(t *testing.T, repo *MockNotificationRepository) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	h := NewNotificationHandler(
		service.NewNotificationService(repo),
		flash.NewQueue(adapter, time.Minute),
	)

	app := fiber.New()
	app.Post("/notifications/:id/send", h.SendNotification)
	app.Get("/notices", h.DrainNotices)
	return app
}

func TestNotificationHandler_SendQueuesNotice(t *testing.T) {
	repo := new(MockNotificationRepository)
	app := setupApp(t, repo)

	draft := &domain.Notification{ID: "n1", Title: "Sale", Message: "20% off", Status: domain.StatusDraft}
	sentAt := time.Now().UTC()
	sent := &domain.Notification{ID: "n1", Title: "Sale", Message: "20% off", Status: domain.StatusSent, SentAt: &sentAt}

	repo.On("GetByID", mock.Anything, "n1").Return(draft, nil).Once()
	repo.On("MarkSent", mock.Anything, "n1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	repo.On("GetByID", mock.Anything, "n1").Return(sent, nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/notifications/n1/send", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The send left a flash notice; draining returns and clears it.
	resp, err = app.Test(httptest.NewRequest("GET", "/notices", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notices []flash.Notice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notices))
	require.Len(t, notices, 1)
	assert.Equal(t, flash.LevelSuccess, notices[0].Level)

	resp, err = app.Test(httptest.NewRequest("GET", "/notices", nil))
	require.NoError(t, err)
	var drained []flash.Notice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&drained))
	assert.Empty(t, drained)
}

func TestNotificationHandler_SendTwiceConflicts(t *testing.T) {
	repo := new(MockNotificationRepository)
	app := setupApp(t, repo)

	sentAt := time.Now().UTC()
	sent := &domain.Notification{ID: "n1", Status: domain.StatusSent, SentAt: &sentAt}
	repo.On("GetByID", mock.Anything, "n1").Return(sent, nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/notifications/n1/send", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
