package impl

import (
	"context"
	"testing"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	mockRepo "dealroom/internal/mocks/repository"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func adminPrincipal() *service.Principal {
	return &service.Principal{
		Subject: uuid.New().String(),
		Roles:   entity.Roles{entity.RoleAdmin},
	}
}

func testUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:       id,
		Username: "ada",
		Email:    "ada@example.com",
		IsActive: true,
		Roles:    entity.Roles{entity.RoleSeller},
	}
}

func TestUserService_GetMe(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := testUser(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetMe(ctx, buyerPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetMe_UnknownSubject(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetMe(ctx, buyerPrincipal(userID))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetMe_MalformedSubject(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := &service.Principal{Subject: "not-a-uuid"}

	_, err := fx.service.GetMe(ctx, principal)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_UpdateUser_SelfUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := testUser(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "ada.l", updated.Username)
			assert.False(t, updated.UpdatedAt.IsZero())
		}).
		Return(nil)

	updated, err := fx.service.UpdateUser(ctx, buyerPrincipal(userID), userID, usecase.UpdateUserInput{
		Username: strPtr("ada.l"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada.l", updated.Username)
}

func TestUserService_UpdateUser_OtherAccountForbidden(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.UpdateUser(ctx, buyerPrincipal(uuid.New()), uuid.New(), usecase.UpdateUserInput{
		Username: strPtr("intruder"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := testUser(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(testUser(uuid.New()), nil)

	_, err := fx.service.UpdateUser(ctx, buyerPrincipal(userID), userID, usecase.UpdateUserInput{
		Email: strPtr("taken@example.com"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

// Submitting the current email again is not a conflict; the uniqueness
// check only runs when the address actually changes.
func TestUserService_UpdateUser_SameEmailNoConflictCheck(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := testUser(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err := fx.service.UpdateUser(ctx, buyerPrincipal(userID), userID, usecase.UpdateUserInput{
		Email: strPtr(user.Email),
	})
	require.NoError(t, err)
}

func TestUserService_ListUsers_AdminOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{testUser(uuid.New()), testUser(uuid.New())}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, adminPrincipal())
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_ListUsers_NonAdminDenied(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.ListUsers(ctx, buyerPrincipal(uuid.New()))
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestUserService_CreateUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "grace@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, created *entity.User) {
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.True(t, created.IsActive)
			assert.True(t, created.Roles.Contains(entity.RoleSeller))
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, adminPrincipal(), usecase.CreateUserInput{
		Username: "grace",
		Email:    "grace@example.com",
		Roles:    []string{"seller"},
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", user.Username)
}

func TestUserService_CreateUser_NonAdminDenied(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.CreateUser(ctx, buyerPrincipal(uuid.New()), usecase.CreateUserInput{
		Username: "grace",
		Email:    "grace@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestUserService_CreateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(testUser(uuid.New()), nil)

	_, err := fx.service.CreateUser(ctx, adminPrincipal(), usecase.CreateUserInput{
		Username: "ada2",
		Email:    "ada@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

// Deactivation flips the flag and keeps the row so existing agreements and
// purchases retain a valid counterparty.
func TestUserService_DeactivateUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := testUser(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.False(t, updated.IsActive)
		}).
		Return(nil)

	deactivated, err := fx.service.DeactivateUser(ctx, adminPrincipal(), userID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestUserService_DeactivateUser_NonAdminDenied(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.DeactivateUser(ctx, buyerPrincipal(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}
