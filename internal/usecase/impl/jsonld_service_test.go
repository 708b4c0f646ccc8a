package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"vault/config"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	mockRepo "vault/internal/mocks/repository"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jsonLDServiceFixtures holds all test dependencies for jsonld service tests.
type jsonLDServiceFixtures struct {
	service   usecase.JsonLDUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestJsonLDService(t *testing.T) jsonLDServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Public: &config.PublicConfig{BaseURL: "https://vault.example.com"},
	}

	service := NewJsonLDService(JsonLDServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    logger,
	})

	return jsonLDServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestJsonLDService_GenerateFeed_FullProfile(t *testing.T) {
	fx := createTestJsonLDService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{
		ID:           businessID,
		Name:         "Joe's Cafe",
		Description:  "Cozy espresso bar",
		BusinessType: entity.BusinessTypeCafe,
		Phone:        "+91-98765-43210",
		Address:      "12 MG Road, Bengaluru",
	}
	services := []*entity.Service{
		{Name: "Espresso", Description: "Double shot", Price: decimal.NewFromInt(120)},
	}
	coupons := []*entity.Coupon{
		{Code: "WELCOME10", Description: "10% off first order", IsActive: true},
	}
	media := []*entity.MediaAsset{
		{MediaType: entity.MediaTypeImage, URL: "https://cdn.example.com/media/front.jpg"},
	}
	opInfo := &entity.OperationalInfo{OpeningHours: "09:00", ClosingHours: "21:00"}
	meta := &entity.AiMetadata{
		ExtractedInsights: "Best beans in town",
		Keywords:          "cafe, espresso",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)
			mockMetaRepo := mockRepo.NewMockAiMetadataRepository(t)
			mockFeedRepo := mockRepo.NewMockJsonLDFeedRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockFactory.EXPECT().AiMetadataRepo().Return(mockMetaRepo)
			mockFactory.EXPECT().JsonLDRepo().Return(mockFeedRepo)

			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(services, nil)
			mockCouponRepo.EXPECT().FindActiveByBusiness(ctx, businessID).Return(coupons, nil)
			mockMediaRepo.EXPECT().FindByBusiness(ctx, businessID, 0).Return(media, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).Return(opInfo, nil)
			mockMetaRepo.EXPECT().FindLatestByBusiness(ctx, businessID).Return(meta, nil)
			mockFeedRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.JsonLDFeed")).
				Run(func(ctx context.Context, feed *entity.JsonLDFeed) {
					feed.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	feed, err := fx.service.GenerateFeed(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, "Cafe", feed.SchemaType)
	assert.True(t, feed.IsValid)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(feed.JsonLDData), &doc))

	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "Cafe", doc["@type"])
	assert.Equal(t, "Joe's Cafe", doc["name"])
	assert.Equal(t, "Cozy espresso bar - Best beans in town", doc["description"])
	assert.Equal(t, "cafe, espresso", doc["keywords"])
	assert.Equal(t, "https://vault.example.com/business/"+businessID.String(), doc["url"])
	assert.Equal(t, "https://cdn.example.com/media/front.jpg", doc["image"])
	assert.Equal(t, "Mo-Su 09:00-21:00", doc["openingHours"])

	offers, ok := doc["makesOffer"].([]any)
	require.True(t, ok)
	require.Len(t, offers, 1)
	offer := offers[0].(map[string]any)
	assert.Equal(t, "120.00", offer["price"])
	assert.Equal(t, "INR", offer["priceCurrency"])

	hasCoupon, ok := doc["hasCoupon"].([]any)
	require.True(t, ok)
	require.Len(t, hasCoupon, 1)
	assert.Equal(t, "WELCOME10", hasCoupon[0].(map[string]any)["discountCode"])
}

func TestJsonLDService_GenerateFeed_MinimalProfile(t *testing.T) {
	fx := createTestJsonLDService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{
		ID:           businessID,
		Name:         "Pop-up Stall",
		BusinessType: "street_food",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)
			mockMetaRepo := mockRepo.NewMockAiMetadataRepository(t)
			mockFeedRepo := mockRepo.NewMockJsonLDFeedRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockFactory.EXPECT().AiMetadataRepo().Return(mockMetaRepo)
			mockFactory.EXPECT().JsonLDRepo().Return(mockFeedRepo)

			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(nil, nil)
			mockCouponRepo.EXPECT().FindActiveByBusiness(ctx, businessID).Return(nil, nil)
			mockMediaRepo.EXPECT().FindByBusiness(ctx, businessID, 0).Return(nil, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)
			mockMetaRepo.EXPECT().FindLatestByBusiness(ctx, businessID).
				Return(nil, repository.ErrMetadataNotFound)
			mockFeedRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.JsonLDFeed")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	feed, err := fx.service.GenerateFeed(ctx, businessID)

	require.NoError(t, err)
	// Unknown categories fall back to the generic vocabulary term.
	assert.Equal(t, "LocalBusiness", feed.SchemaType)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(feed.JsonLDData), &doc))

	address := doc["address"].(map[string]any)
	assert.Equal(t, "Not listed", address["streetAddress"])
	assert.NotContains(t, doc, "makesOffer")
	assert.NotContains(t, doc, "hasCoupon")
	assert.NotContains(t, doc, "geo")
	assert.NotContains(t, doc, "image")
	assert.NotContains(t, doc, "openingHours")
}

func TestJsonLDService_GenerateFeed_AppendsHistory(t *testing.T) {
	fx := createTestJsonLDService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{
		ID:           businessID,
		Name:         "Pop-up Stall",
		BusinessType: "street_food",
	}

	var created []*entity.JsonLDFeed

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)
			mockMetaRepo := mockRepo.NewMockAiMetadataRepository(t)
			mockFeedRepo := mockRepo.NewMockJsonLDFeedRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockFactory.EXPECT().AiMetadataRepo().Return(mockMetaRepo)
			mockFactory.EXPECT().JsonLDRepo().Return(mockFeedRepo)

			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(nil, nil)
			mockCouponRepo.EXPECT().FindActiveByBusiness(ctx, businessID).Return(nil, nil)
			mockMediaRepo.EXPECT().FindByBusiness(ctx, businessID, 0).Return(nil, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)
			mockMetaRepo.EXPECT().FindLatestByBusiness(ctx, businessID).
				Return(nil, repository.ErrMetadataNotFound)
			mockFeedRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.JsonLDFeed")).
				Run(func(ctx context.Context, feed *entity.JsonLDFeed) {
					feed.ID = uuid.New()
					created = append(created, feed)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Times(2)

	first, err := fx.service.GenerateFeed(ctx, businessID)
	require.NoError(t, err)

	second, err := fx.service.GenerateFeed(ctx, businessID)
	require.NoError(t, err)

	// Regeneration appends a fresh row instead of replacing the previous one.
	require.Len(t, created, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.GeneratedAt.IsZero())
	assert.False(t, second.GeneratedAt.IsZero())
	assert.False(t, second.GeneratedAt.Before(first.GeneratedAt))
	assert.NotEqual(t, first.GeneratedAt, second.GeneratedAt)
}

func TestJsonLDService_GenerateFeed_BusinessNotFound(t *testing.T) {
	fx := createTestJsonLDService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(nil, repository.ErrBusinessNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found"))

	_, err := fx.service.GenerateFeed(ctx, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestJsonLDService_GetFeed_NotFound(t *testing.T) {
	fx := createTestJsonLDService(t)

	ctx := context.Background()
	feedID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFeedRepo := mockRepo.NewMockJsonLDFeedRepository(t)

			mockFactory.EXPECT().JsonLDRepo().Return(mockFeedRepo)
			mockFeedRepo.EXPECT().FindByID(ctx, feedID).Return(nil, repository.ErrFeedNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrFeedNotFound, "jsonld feed not found"))

	_, err := fx.service.GetFeed(ctx, feedID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedNotFound))
}
