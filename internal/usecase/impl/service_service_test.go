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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serviceServiceFixtures holds all test dependencies for service service tests.
type serviceServiceFixtures struct {
	service   usecase.ServiceUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestServiceService(t *testing.T) serviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewServiceService(txManager, logger)

	return serviceServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestServiceService_CreateService_AppliesDefaults(t *testing.T) {
	fx := createTestServiceService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateServiceInput{
		BusinessID: businessID,
		Name:       "Espresso",
		Price:      decimal.NewFromInt(120),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockServiceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Service")).
				Run(func(ctx context.Context, svc *entity.Service) {
					svc.ID = uuid.New()
					assert.Equal(t, entity.DefaultCurrency, svc.Currency)
					assert.True(t, svc.IsAvailable)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	svc, err := fx.service.CreateService(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Espresso", svc.Name)
	assert.Equal(t, "INR", svc.Currency)
}

func TestServiceService_CreateService_BusinessNotFound(t *testing.T) {
	fx := createTestServiceService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateServiceInput{BusinessID: businessID, Name: "Espresso"}

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

	_, err := fx.service.CreateService(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestServiceService_UpdateService_PartialUpdate(t *testing.T) {
	fx := createTestServiceService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	newPrice := decimal.NewFromInt(150)
	available := false
	input := &usecase.UpdateServiceInput{
		Price:       &newPrice,
		IsAvailable: &available,
	}

	existing := &entity.Service{
		ID:          serviceID,
		Name:        "Espresso",
		Price:       decimal.NewFromInt(120),
		Currency:    "INR",
		IsAvailable: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(existing, nil)
			mockServiceRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateService(ctx, serviceID, input)

	require.NoError(t, err)
	assert.Equal(t, "Espresso", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.False(t, updated.IsAvailable)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestServiceService_DeleteService_NotFound(t *testing.T) {
	fx := createTestServiceService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().Delete(ctx, serviceID).Return(repository.ErrServiceNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrServiceNotFound, "service not found"))

	err := fx.service.DeleteService(ctx, serviceID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}
