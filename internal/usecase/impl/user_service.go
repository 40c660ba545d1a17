// Package impl provides the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"time"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
	}
}

// GetMe returns the account matching the principal's subject.
func (s *userService) GetMe(ctx context.Context, principal *service.Principal) (*entity.User, error) {
	userID, err := uuid.Parse(principal.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("subject claim is not a valid user id")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateUser applies a self-service profile update.
func (s *userService) UpdateUser(ctx context.Context, principal *service.Principal, userID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if principal.Subject != userID.String() {
		return nil, domainerrors.ErrForbidden.WithDetails("users may only update their own account")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if input.Email != nil && *input.Email != user.Email {
		if err := s.ensureEmailFree(ctx, *input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ListUsers returns every account. Admin only.
func (s *userService) ListUsers(ctx context.Context, principal *service.Principal) ([]*entity.User, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrAdminRequired
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser provisions a new account. Admin only.
func (s *userService) CreateUser(ctx context.Context, principal *service.Principal, input usecase.CreateUserInput) (*entity.User, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrAdminRequired
	}

	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		IsActive:  true,
		Roles:     entity.RolesFromStrings(input.Roles),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// DeactivateUser marks an account inactive. Admin only. The record stays so
// agreements and purchases keep a valid counterparty.
func (s *userService) DeactivateUser(ctx context.Context, principal *service.Principal, userID uuid.UUID) (*entity.User, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrAdminRequired
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	user.IsActive = false
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate user")
	}

	return user, nil
}

func (s *userService) ensureEmailFree(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}
	if existing != nil {
		return domainerrors.ErrEmailAlreadyRegistered
	}

	return nil
}
