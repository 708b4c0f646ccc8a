// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user account.
type RegisterInput struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name" validate:"required"`
	AuthProvider string `json:"auth_provider"`
	Password     string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and the business profile
// that was provisioned alongside it.
type RegisterOutput struct {
	User     *entity.User            `json:"user"`
	Business *entity.BusinessProfile `json:"business"`
}

// LoginOutput returns the session data after a successful login. BusinessID
// is included so the frontend can route straight to the owner dashboard
// without a second call.
type LoginOutput struct {
	AccessToken string     `json:"access_token"`
	UserID      uuid.UUID  `json:"user_id"`
	BusinessID  *uuid.UUID `json:"business_id"`
	User        *entity.User `json:"user"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates the user and their starter business profile in one
	// transaction. A partial failure leaves no orphan account behind.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetByEmail looks a user up by their unique email address.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Login verifies credentials, stamps the last login time and issues an
	// access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
