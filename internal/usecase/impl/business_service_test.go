package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	mockRepo "vault/internal/mocks/repository"
	mockService "vault/internal/mocks/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service   usecase.BusinessUsecase
	txManager *mockRepo.MockTransactionManager
	cache     *mockService.MockDirectoryCache
	publisher *mockService.MockEventPublisher
	qrcode    *mockService.MockQRCodeService
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockService.NewMockDirectoryCache(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrcode := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBusinessService(BusinessServiceParams{
		TxManager: txManager,
		Cache:     cache,
		Publisher: publisher,
		QRCode:    qrcode,
		Logger:    logger,
	})

	return businessServiceFixtures{
		service:   service,
		txManager: txManager,
		cache:     cache,
		publisher: publisher,
		qrcode:    qrcode,
	}
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateBusinessInput{
		OwnerID:      ownerID,
		Name:         "Joe's Cafe",
		BusinessType: entity.BusinessTypeCafe,
	}

	owner := &entity.User{ID: ownerID, Email: "joe@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockUserRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
				Run(func(ctx context.Context, business *entity.BusinessProfile) {
					business.ID = uuid.New()
					assert.Equal(t, ownerID, business.OwnerID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.cache.EXPECT().Invalidate()
	fx.publisher.EXPECT().
		PublishBusinessChange(ctx, mock.AnythingOfType("*service.BusinessChangeEvent")).
		Return(nil)

	business, err := fx.service.CreateBusiness(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Joe's Cafe", business.Name)
}

func TestBusinessService_CreateBusiness_OwnerNotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateBusinessInput{OwnerID: ownerID, Name: "Ghost Shop"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOwnerNotFound, "owner not found"))

	_, err := fx.service.CreateBusiness(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))
}

func TestBusinessService_UpdateBusiness_PartialUpdate(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	newName := "Joe's Grand Cafe"
	published := false
	input := &usecase.UpdateBusinessInput{
		Name:      &newName,
		Published: &published,
	}

	existing := &entity.BusinessProfile{
		ID:          businessID,
		Name:        "Joe's Cafe",
		Description: "Small corner cafe",
		Published:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(existing, nil)
			mockBusinessRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.cache.EXPECT().Invalidate()
	fx.publisher.EXPECT().
		PublishBusinessChange(ctx, mock.AnythingOfType("*service.BusinessChangeEvent")).
		Return(nil)

	updated, err := fx.service.UpdateBusiness(ctx, businessID, input)

	require.NoError(t, err)
	assert.Equal(t, "Joe's Grand Cafe", updated.Name)
	assert.Equal(t, "Small corner cafe", updated.Description)
	assert.False(t, updated.Published)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestBusinessService_GetDirectory_CacheHit(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	cachedEntries := []*entity.DirectoryEntry{
		{Business: &entity.BusinessProfile{ID: uuid.New(), Name: "Cached Cafe"}},
	}

	fx.cache.EXPECT().Read().Return(cachedEntries, uint64(7), true)

	entries, err := fx.service.GetDirectory(ctx)

	require.NoError(t, err)
	assert.Equal(t, cachedEntries, entries)
}

func TestBusinessService_GetDirectory_CacheMissRebuilds(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{ID: businessID, Name: "Joe's Cafe"}
	thumbnail := []*entity.MediaAsset{{ID: uuid.New(), BusinessID: businessID, MediaType: entity.MediaTypeImage}}
	services := []*entity.Service{{ID: uuid.New(), BusinessID: businessID, Name: "Espresso"}}
	coupons := []*entity.Coupon{{ID: uuid.New(), BusinessID: businessID, Code: "WELCOME10"}}

	fx.cache.EXPECT().Read().Return(nil, uint64(3), false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)

			mockBusinessRepo.EXPECT().FindAll(ctx).Return([]*entity.BusinessProfile{business}, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).Return(nil, repository.ErrOperationalInfoNotFound)
			mockMediaRepo.EXPECT().FindByBusiness(ctx, businessID, 1).Return(thumbnail, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(services, nil)
			mockCouponRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(coupons, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.cache.EXPECT().
		Write(mock.AnythingOfType("[]*entity.DirectoryEntry"), uint64(3)).
		Return(true)

	entries, err := fx.service.GetDirectory(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, business, entries[0].Business)
	assert.Nil(t, entries[0].OperationalInfo)
	assert.Equal(t, thumbnail, entries[0].Media)
	assert.Equal(t, services, entries[0].Services)
	assert.Equal(t, coupons, entries[0].Coupons)
}

func TestBusinessService_GetDirectory_RacedWriteIsDiscarded(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	fx.cache.EXPECT().Read().Return(nil, uint64(5), false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindAll(ctx).Return([]*entity.BusinessProfile{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// An invalidation raced the rebuild; the stale snapshot must not land.
	fx.cache.EXPECT().
		Write(mock.AnythingOfType("[]*entity.DirectoryEntry"), uint64(5)).
		Return(false)

	entries, err := fx.service.GetDirectory(ctx)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBusinessService_ListBusinesses_ClampsLimit(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			// An out-of-range limit falls back to the page maximum.
			mockBusinessRepo.EXPECT().List(ctx, 100, 0).Return([]*entity.BusinessProfile{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.ListBusinesses(ctx, 500, -1)

	require.NoError(t, err)
}

func TestBusinessService_BusinessQR_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{ID: businessID, Name: "Joe's Cafe"}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.qrcode.EXPECT().GenerateBusinessQR(businessID).Return(png, nil)

	got, err := fx.service.BusinessQR(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
