package handler

import (
	"log/slog"
	"net/http"

	"recipebox/internal/delivery/api/response"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		Message: "User registered",
		User:    output.User,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: output.Token})
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrCredentialsRequired
	}
	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrCredentialsRequired
	}

	return &req, nil
}
