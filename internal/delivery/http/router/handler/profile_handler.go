package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the authenticated user's own account.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserDTO(user), "")
}

// UpdateProfile edits the caller's name fields. Role and district are not
// editable here.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input usecase.ProfileUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid profile input", "")
	}

	user, err := h.uc.Update(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserDTO(user), "Profile updated")
}
