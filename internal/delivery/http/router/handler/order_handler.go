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

// OrderHandler serves the customer side of orders: checkout and history.
type OrderHandler struct {
	uc usecase.CustomerOrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CustomerOrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Checkout turns the cart into an order. Stock is decremented line by line
// in the same transaction; any shortfall rolls the whole order back.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid checkout input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.Checkout(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewOrderDTO(order, nil), "Order placed")
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewOrderDTOs(orders), "")
}

// Get returns one of the caller's orders with the parsed shipping address.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	detail, err := h.uc.Get(c.Request().Context(), deliverycontext.GetIdentity(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewOrderDTO(detail.Order, detail.ShippingAddress), "")
}
