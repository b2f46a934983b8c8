// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type signInRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles the registration request. The route and the success
// message keep the legacy naming, typo included.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User signIn succssful!")
}

// Login handles the login request and returns the account plus the token.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Login(c, http.StatusOK, "Login Successful", output.User, output.Token)
}
