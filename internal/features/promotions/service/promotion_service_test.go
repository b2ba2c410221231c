package service

import (
	"context"
	"testing"
	"time"

	"backoffice-api/internal/features/promotions/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPromotionRepository is a mock implementation of the promotion repository port.
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) Insert(ctx context.Context, promotion *domain.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testPromotion() domain.Promotion {
	return domain.Promotion{
		Name:          "Black Friday",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: decimal.NewFromInt(20),
		StartDate:     time.Date(2026, 11, 27, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestPromotionService_Save(t *testing.T) {
	t.Run("InsertWithoutID", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		svc := NewPromotionService(repo)

		p := testPromotion()
		repo.On("Insert", mock.Anything, &p).Return(nil).Once()

		require.NoError(t, svc.Save(context.Background(), &p))
		repo.AssertExpectations(t)
	})

	t.Run("UpdateWithID", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		svc := NewPromotionService(repo)

		p := testPromotion()
		p.ID = "promo-1"
		repo.On("Update", mock.Anything, &p).Return(nil).Once()

		require.NoError(t, svc.Save(context.Background(), &p))
		repo.AssertExpectations(t)
	})

	t.Run("ValidationShortCircuits", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		svc := NewPromotionService(repo)

		p := testPromotion()
		p.DiscountValue = decimal.Zero

		err := svc.Save(context.Background(), &p)
		assert.ErrorIs(t, err, domain.ErrInvalidDiscountValue)
		repo.AssertNotCalled(t, "Insert")
		repo.AssertNotCalled(t, "Update")
	})
}
