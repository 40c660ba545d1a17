package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliveryctx "dealroom/internal/delivery/context"
	"dealroom/internal/delivery/http/response"
	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Roles    []string `json:"roles" validate:"dive,oneof=admin seller buyer"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Roles:     u.Roles.ToStrings(),
		CreatedAt: u.CreatedAt,
	}
}

// GetMe handles GET /user/me.
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	user, err := h.uc.GetMe(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Update handles PATCH /user/:id/update.
func (h *UserHandler) Update(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), principal, userID, usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated")
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	users, err := h.uc.ListUsers(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Create handles POST /user/create.
func (h *UserHandler) Create(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), principal, usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Roles:    req.Roles,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created")
}

// Deactivate handles PATCH /user/:id/deactivate.
func (h *UserHandler) Deactivate(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	user, err := h.uc.DeactivateUser(c.Request().Context(), principal, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User deactivated")
}
