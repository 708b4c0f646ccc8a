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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	cache        *mockService.MockDirectoryCache
	publisher    *mockService.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	cache := mockService.NewMockDirectoryCache(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Cache:        cache,
		Publisher:    publisher,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		cache:        cache,
		publisher:    publisher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "owner@example.com",
		Name:     "Priya",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					assert.Equal(t, "hashed-secret", user.PasswordHash)
					assert.Equal(t, "local", user.AuthProvider)
					assert.True(t, user.IsActive)
				}).
				Return(nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
				Run(func(ctx context.Context, business *entity.BusinessProfile) {
					assert.Equal(t, "Priya Business", business.Name)
					assert.Equal(t, "Auto-created on signup", business.Description)
					assert.True(t, business.Published)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.cache.EXPECT().Invalidate()
	fx.publisher.EXPECT().
		PublishBusinessChange(ctx, mock.AnythingOfType("*service.BusinessChangeEvent")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", output.User.Email)
	assert.Equal(t, "Priya Business", output.Business.Name)
}

func TestUserService_Register_StarterBusinessFailureRollsBack(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "owner@example.com",
		Name:     "Priya",
		Password: "secret123",
	}

	dbErr := errors.New("insert failed")

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	// The starter-business step fails after the user insert, so the whole
	// transaction aborts: no cache invalidation, no event, no user row.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockBusinessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
				Return(dbErr)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(dbErr, "failed to create starter business during registration"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Nil(t, output)
}

func TestUserService_Register_StarterBusinessNameFallback(t *testing.T) {
	assert.Equal(t, "New Business", starterBusinessName(""))
	assert.Equal(t, "Ravi Business", starterBusinessName("Ravi"))
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
	}

	existingUser := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(existingUser, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	_, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	input := &usecase.LoginInput{Email: "owner@example.com", Password: "secret123"}

	storedUser := &entity.User{
		ID:           userID,
		Email:        "owner@example.com",
		PasswordHash: "hashed-secret",
	}
	ownedBusiness := &entity.BusinessProfile{ID: businessID, OwnerID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockUserRepo.EXPECT().Update(ctx, storedUser).Return(nil)
			mockBusinessRepo.EXPECT().FindByOwner(ctx, userID).Return(ownedBusiness, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.tokenService.EXPECT().GenerateToken(userID, "owner@example.com").Return("access-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, userID, output.UserID)
	require.NotNil(t, output.BusinessID)
	assert.Equal(t, businessID, *output.BusinessID)
	assert.NotNil(t, storedUser.LastLogin)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	_, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "owner@example.com", Password: "wrong"}

	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "hashed-secret",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	_, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	_, err := fx.service.GetByEmail(ctx, "ghost@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
