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
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// operationalInfoServiceFixtures holds all test dependencies for
// operational info service tests.
type operationalInfoServiceFixtures struct {
	service   usecase.OperationalInfoUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOperationalInfoService(t *testing.T) operationalInfoServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOperationalInfoService(txManager, logger)

	return operationalInfoServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestOperationalInfoService_Create_Success(t *testing.T) {
	fx := createTestOperationalInfoService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateOperationalInfoInput{
		BusinessID:    businessID,
		OpeningHours:  "09:00",
		ClosingHours:  "21:00",
		OffDays:       []string{"Sunday"},
		WifiAvailable: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)
			mockInfoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OperationalInfo")).
				Run(func(ctx context.Context, info *entity.OperationalInfo) {
					info.ID = uuid.New()
					assert.Equal(t, "09:00", info.OpeningHours)
					assert.Equal(t, []string{"Sunday"}, info.OffDays)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	info, err := fx.service.CreateOperationalInfo(ctx, input)

	require.NoError(t, err)
	assert.True(t, info.WifiAvailable)
}

func TestOperationalInfoService_Create_AlreadyExists(t *testing.T) {
	fx := createTestOperationalInfoService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateOperationalInfoInput{BusinessID: businessID}

	existing := &entity.OperationalInfo{ID: uuid.New(), BusinessID: businessID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOperationalInfoExists, "operational info already exists"))

	_, err := fx.service.CreateOperationalInfo(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOperationalInfoExists))
}

func TestOperationalInfoService_Update_PartialUpdate(t *testing.T) {
	fx := createTestOperationalInfoService(t)

	ctx := context.Background()
	businessID := uuid.New()
	closing := "22:00"
	input := &usecase.UpdateOperationalInfoInput{
		ClosingHours: &closing,
		OffDays:      []string{"Monday", "Tuesday"},
	}

	existing := &entity.OperationalInfo{
		ID:           uuid.New(),
		BusinessID:   businessID,
		OpeningHours: "09:00",
		ClosingHours: "21:00",
		OffDays:      []string{"Sunday"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).Return(existing, nil)
			mockInfoRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateOperationalInfo(ctx, businessID, input)

	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.OpeningHours)
	assert.Equal(t, "22:00", updated.ClosingHours)
	assert.Equal(t, []string{"Monday", "Tuesday"}, updated.OffDays)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestOperationalInfoService_Get_NotFound(t *testing.T) {
	fx := createTestOperationalInfoService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockOperationalInfoRepository(t)

			mockFactory.EXPECT().OperationalInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByBusiness(ctx, businessID).
				Return(nil, repository.ErrOperationalInfoNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOperationalInfoNotFound, "operational info not found"))

	_, err := fx.service.GetOperationalInfo(ctx, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOperationalInfoNotFound))
}
