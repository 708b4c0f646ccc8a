// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAuthProvider = "local"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cache        service.DirectoryCache
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Cache        service.DirectoryCache
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		cache:        params.Cache,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: the account and
// its starter business profile are created in one transaction, so a failure
// at any step never leaves an orphan user behind.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	var starterBusiness *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		businessRepo := repoFactory.BusinessRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
		}

		authProvider := input.AuthProvider
		if authProvider == "" {
			authProvider = defaultAuthProvider
		}

		newUser := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			AuthProvider: authProvider,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		// Every account starts with a workspace so onboarding needs no
		// second request.
		newBusiness := &entity.BusinessProfile{
			OwnerID:     newUser.ID,
			Name:        starterBusinessName(newUser.Name),
			Description: "Auto-created on signup",
			Published:   true,
		}
		if err := businessRepo.Create(ctx, newBusiness); err != nil {
			return errors.Wrap(err, "failed to create starter business during registration")
		}

		registeredUser = newUser
		starterBusiness = newBusiness

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	// The starter business is a business create like any other.
	srv.cache.Invalidate()
	publishBusinessChange(ctx, srv.publisher, srv.log(ctx), starterBusiness, service.BusinessChangeCreated)

	srv.log(ctx).Debug("Registration completed",
		slog.Any("userID", registeredUser.ID),
		slog.Any("businessID", starterBusiness.ID))

	return &usecase.RegisterOutput{User: registeredUser, Business: starterBusiness}, nil
}

// GetByEmail looks a user up by email address.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		found = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user lookup transaction")
	}

	return found, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	loggedInUser, err := srv.loadLoginUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	businessID, err := srv.finishLogin(ctx, loggedInUser)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateToken(loggedInUser.ID, loggedInUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		UserID:      loggedInUser.ID,
		BusinessID:  businessID,
		User:        loggedInUser,
	}, nil
}

// loadLoginUser loads the account from the primary so the credential check
// never runs against a stale replica row.
func (srv *userService) loadLoginUser(ctx context.Context, email string) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, findErr := repoFactory.UserRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}
		loggedInUser = user

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login user transaction")
	}

	return loggedInUser, nil
}

// finishLogin stamps the last login time and resolves the dashboard
// business in one short transaction.
func (srv *userService) finishLogin(ctx context.Context, user *entity.User) (*uuid.UUID, error) {
	var businessID *uuid.UUID

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()
		user.LastLogin = &now
		if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to stamp last login")
		}

		business, err := repoFactory.BusinessRepo().FindByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				// Accounts predating auto-provisioning may own nothing.
				return nil
			}

			return errors.Wrap(err, "failed to find business by owner")
		}
		id := business.ID
		businessID = &id

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return businessID, nil
}

func starterBusinessName(ownerName string) string {
	if ownerName == "" {
		ownerName = "New"
	}

	return fmt.Sprintf("%s Business", ownerName)
}
