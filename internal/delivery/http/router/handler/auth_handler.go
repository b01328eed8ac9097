package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration, login and session routes.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// RegisterCustomer handles customer sign-up.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var input usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid registration input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterCustomer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewUserDTO(output.User), "Account registered")
}

// RegisterVendor handles vendor sign-up; the shop starts in the pending state.
func (h *AuthHandler) RegisterVendor(c echo.Context) error {
	var input usecase.RegisterVendorInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid registration input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterVendor(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewUserDTO(output.User), "Vendor registered")
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid login input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionDTO(output), "Login successful")
}

// Refresh rotates a refresh token into a fresh token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid refresh input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionDTO(output), "Token refreshed")
}

// Logout ends the session behind the presented refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid logout input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// RequestPasswordReset starts the reset flow. The reply is identical whether
// or not the email is registered.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input usecase.PasswordResetRequestInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid reset request", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, usecase.PasswordResetRequestMessage)
}

// ConfirmPasswordReset redeems a reset token for a new password.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input usecase.PasswordResetConfirmInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid reset confirmation", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ConfirmPasswordReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

func sessionDTO(output *usecase.LoginOutput) *response.SessionDTO {
	return &response.SessionDTO{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         response.NewUserDTO(output.User),
	}
}
