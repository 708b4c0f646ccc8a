package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vault/config"
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

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service   usecase.MediaUsecase
	txManager *mockRepo.MockTransactionManager
	store     *mockService.MockMediaStore
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	store := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Media: &config.MediaConfig{MaxUploadBytes: 50 << 20},
	}

	service := NewMediaService(MediaServiceParams{
		TxManager: txManager,
		Store:     store,
		Config:    cfg,
		Logger:    logger,
	})

	return mediaServiceFixtures{
		service:   service,
		txManager: txManager,
		store:     store,
	}
}

func TestMediaService_UploadMedia_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.UploadMediaInput{
		BusinessID: businessID,
		MediaType:  entity.MediaTypeImage,
		Filename:   "storefront.jpg",
		AltText:    "Front of the shop",
		Size:       1024,
		Content:    strings.NewReader("fake image bytes"),
	}

	fx.store.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", input.Content).
		Run(func(ctx context.Context, key string, contentType string, r io.Reader) {
			assert.True(t, strings.HasSuffix(key, "_storefront.jpg"))
		}).
		Return("https://cdn.example.com/media/abc_storefront.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockMediaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MediaAsset")).
				Run(func(ctx context.Context, asset *entity.MediaAsset) {
					asset.ID = uuid.New()
					assert.Equal(t, entity.MediaTypeImage, asset.MediaType)
					assert.Equal(t, "https://cdn.example.com/media/abc_storefront.jpg", asset.URL)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	asset, err := fx.service.UploadMedia(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Front of the shop", asset.AltText)
}

func TestMediaService_UploadMedia_InvalidMediaType(t *testing.T) {
	fx := createTestMediaService(t)

	input := &usecase.UploadMediaInput{
		BusinessID: uuid.New(),
		MediaType:  "hologram",
		Filename:   "thing.jpg",
		Size:       1024,
	}

	_, err := fx.service.UploadMedia(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidMediaType))
}

func TestMediaService_UploadMedia_WrongExtensionForType(t *testing.T) {
	fx := createTestMediaService(t)

	input := &usecase.UploadMediaInput{
		BusinessID: uuid.New(),
		MediaType:  entity.MediaTypeImage,
		Filename:   "clip.mp4",
		Size:       1024,
	}

	_, err := fx.service.UploadMedia(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidMediaType))
}

func TestMediaService_UploadMedia_FileTooLarge(t *testing.T) {
	fx := createTestMediaService(t)

	input := &usecase.UploadMediaInput{
		BusinessID: uuid.New(),
		MediaType:  entity.MediaTypeImage,
		Filename:   "huge.png",
		Size:       (50 << 20) + 1,
	}

	_, err := fx.service.UploadMedia(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestMediaService_UploadMedia_OrphanedFileIsRemoved(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.UploadMediaInput{
		BusinessID: businessID,
		MediaType:  entity.MediaTypeDocument,
		Filename:   "menu.pdf",
		Size:       2048,
		Content:    strings.NewReader("fake pdf bytes"),
	}

	fx.store.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", input.Content).
		Return("https://cdn.example.com/media/abc_menu.pdf", nil)

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

	fx.store.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := fx.service.UploadMedia(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestMediaService_DeleteMedia_RemovesStoredFile(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	assetID := uuid.New()
	asset := &entity.MediaAsset{
		ID:  assetID,
		URL: "https://cdn.example.com/media/abc_storefront.jpg",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)

			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockMediaRepo.EXPECT().FindByID(ctx, assetID).Return(asset, nil)
			mockMediaRepo.EXPECT().Delete(ctx, assetID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.store.EXPECT().Delete(ctx, "abc_storefront.jpg").Return(nil)

	err := fx.service.DeleteMedia(ctx, assetID)

	require.NoError(t, err)
}
