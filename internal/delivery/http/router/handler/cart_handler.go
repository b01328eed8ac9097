package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the customer's shopping cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List returns the cart with per-line subtotals and the running total.
func (h *CartHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCartDTO(output.Items, output.Total), "")
}

// Add puts a product in the cart, merging with an existing line.
func (h *CartHandler) Add(c echo.Context) error {
	var input usecase.CartAddInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid cart input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.Add(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewCartItemDTO(item), "Added to cart")
}

// UpdateQuantity sets the quantity of one cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCartItemNotFound
	}

	var input usecase.CartUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid cart input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), deliverycontext.GetIdentity(c), itemID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCartItemDTO(item), "Cart updated")
}

// Remove deletes one cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCartItemNotFound
	}

	if err := h.uc.Remove(c.Request().Context(), deliverycontext.GetIdentity(c), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from cart")
}

// Clear empties the cart. Clearing an empty cart succeeds.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), deliverycontext.GetIdentity(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
