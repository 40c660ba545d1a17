// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dealroom/internal/domain/entity"
	"dealroom/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to provision a new account.
type CreateUserInput struct {
	Username string
	Email    string
	Roles    []string
}

// UpdateUserInput carries the self-service profile fields. Nil pointers
// leave the current value untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
}

// UserUsecase defines the interface for account management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// GetMe returns the record matching the authenticated principal.
	GetMe(ctx context.Context, principal *service.Principal) (*entity.User, error)

	// UpdateUser applies a self-service profile update. Only the account
	// owner may update their own record.
	UpdateUser(ctx context.Context, principal *service.Principal, userID uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// ListUsers returns every account. Admin only.
	ListUsers(ctx context.Context, principal *service.Principal) ([]*entity.User, error)

	// CreateUser provisions a new account. Admin only; the email must be
	// unique across accounts.
	CreateUser(ctx context.Context, principal *service.Principal, input CreateUserInput) (*entity.User, error)

	// DeactivateUser marks an account inactive. Admin only. The row is
	// kept so historical agreements and purchases stay attributable.
	DeactivateUser(ctx context.Context, principal *service.Principal, userID uuid.UUID) (*entity.User, error)
}
