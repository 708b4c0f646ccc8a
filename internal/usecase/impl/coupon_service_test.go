package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	mockRepo "vault/internal/mocks/repository"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service   usecase.CouponUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCouponService(txManager, logger)

	return couponServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestCouponService_CreateCoupon_ActiveByDefault(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateCouponInput{
		BusinessID:    businessID,
		Code:          "WELCOME10",
		DiscountValue: "10%",
		ValidFrom:     time.Now().UTC(),
		ValidUntil:    time.Now().UTC().Add(30 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockCouponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coupon")).
				Run(func(ctx context.Context, coupon *entity.Coupon) {
					coupon.ID = uuid.New()
					assert.True(t, coupon.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", coupon.Code)
	assert.True(t, coupon.IsActive)
}

func TestCouponService_CreateCoupon_ExplicitlyInactive(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	inactive := false
	input := &usecase.CreateCouponInput{
		BusinessID: businessID,
		Code:       "LATER20",
		IsActive:   &inactive,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockCouponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coupon")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	assert.False(t, coupon.IsActive)
}

func TestCouponService_UpdateCoupon_TogglesActive(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()
	active := false
	input := &usecase.UpdateCouponInput{IsActive: &active}

	existing := &entity.Coupon{ID: couponID, Code: "WELCOME10", IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindByID(ctx, couponID).Return(existing, nil)
			mockCouponRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCoupon(ctx, couponID, input)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "WELCOME10", updated.Code)
}

func TestCouponService_GetCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindByID(ctx, couponID).Return(nil, repository.ErrCouponNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found"))

	_, err := fx.service.GetCoupon(ctx, couponID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}
