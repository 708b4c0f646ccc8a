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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// aiMetadataServiceFixtures holds all test dependencies for ai metadata
// service tests.
type aiMetadataServiceFixtures struct {
	service   usecase.AiMetadataUsecase
	txManager *mockRepo.MockTransactionManager
	generator *mockService.MockTextGenerator
}

func createTestAiMetadataService(t *testing.T) aiMetadataServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	generator := mockService.NewMockTextGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAiMetadataService(AiMetadataServiceParams{
		TxManager: txManager,
		Generator: generator,
		Logger:    logger,
	})

	return aiMetadataServiceFixtures{
		service:   service,
		txManager: txManager,
		generator: generator,
	}
}

func TestJoinOrString(t *testing.T) {
	assert.Equal(t, "", joinOrString(nil, ", "))
	assert.Equal(t, "cafe", joinOrString("cafe", ", "))
	assert.Equal(t, "cafe, coffee, breakfast", joinOrString([]any{"cafe", "coffee", "breakfast"}, ", "))
	assert.Equal(t, "a; b", joinOrString([]any{"a", "b"}, "; "))
	assert.Equal(t, "42", joinOrString(42.0, ", "))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"keywords": []}`, stripCodeFences("```json\n{\"keywords\": []}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences(`{"a": 1}`))
}

func TestAiMetadataService_GenerateMetadata_CreatesRecord(t *testing.T) {
	fx := createTestAiMetadataService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{
		ID:           businessID,
		Name:         "Joe's Cafe",
		BusinessType: entity.BusinessTypeCafe,
		Description:  "Cozy espresso bar",
		QuoteSlogan:  "Best beans in town",
	}
	services := []*entity.Service{
		{Name: "Espresso", Price: decimal.NewFromInt(120)},
		{Name: "Cold Brew", Price: decimal.NewFromInt(180)},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(services, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, prompt string) {
			assert.Contains(t, prompt, "Analyze this business for SEO optimization")
			assert.Contains(t, prompt, "Business Name: Joe's Cafe")
			assert.Contains(t, prompt, "Espresso ($120)")
			assert.Contains(t, prompt, "Hours: Not listed")
		}).
		Return("```json\n{\"keywords\": [\"cafe\", \"espresso\"], \"extracted_insights\": \"Cozy vibe\", \"intent_labels\": [\"near me\"], \"detected_entities\": [\"Joe's Cafe\"]}\n```", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMetaRepo := mockRepo.NewMockAiMetadataRepository(t)

			mockFactory.EXPECT().AiMetadataRepo().Return(mockMetaRepo)
			mockMetaRepo.EXPECT().FindLatestByBusiness(ctx, businessID).
				Return(nil, repository.ErrMetadataNotFound)
			mockMetaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AiMetadata")).
				Run(func(ctx context.Context, meta *entity.AiMetadata) {
					meta.ID = uuid.New()
					assert.Equal(t, "cafe, espresso", meta.Keywords)
					assert.Equal(t, "Cozy vibe", meta.ExtractedInsights)
					assert.Equal(t, "near me", meta.IntentLabels)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	meta, err := fx.service.GenerateMetadata(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, businessID, meta.BusinessID)
	assert.Equal(t, "cafe, espresso", meta.Keywords)
}

func TestAiMetadataService_GenerateMetadata_UpdatesExistingRecord(t *testing.T) {
	fx := createTestAiMetadataService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{ID: businessID, Name: "Joe's Cafe"}
	existing := &entity.AiMetadata{
		ID:         uuid.New(),
		BusinessID: businessID,
		Keywords:   "stale, keywords",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(nil, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return(`{"keywords": "fresh, keywords"}`, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMetaRepo := mockRepo.NewMockAiMetadataRepository(t)

			mockFactory.EXPECT().AiMetadataRepo().Return(mockMetaRepo)
			mockMetaRepo.EXPECT().FindLatestByBusiness(ctx, businessID).Return(existing, nil)
			mockMetaRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	meta, err := fx.service.GenerateMetadata(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, meta.ID)
	assert.Equal(t, "fresh, keywords", meta.Keywords)
}

func TestAiMetadataService_GenerateMetadata_UpstreamFailure(t *testing.T) {
	fx := createTestAiMetadataService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{ID: businessID, Name: "Joe's Cafe"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(nil, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("quota exceeded"))

	_, err := fx.service.GenerateMetadata(ctx, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func TestAiMetadataService_GenerateMetadata_MalformedResponse(t *testing.T) {
	fx := createTestAiMetadataService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.BusinessProfile{ID: businessID, Name: "Joe's Cafe"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, businessID, 0, 0).Return(nil, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("Sure! Here are some keywords for you.", nil)

	_, err := fx.service.GenerateMetadata(ctx, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func TestAiMetadataService_CreateMetadata_BusinessNotFound(t *testing.T) {
	fx := createTestAiMetadataService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateMetadataInput{BusinessID: businessID, Keywords: "manual"}

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

	_, err := fx.service.CreateMetadata(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}
