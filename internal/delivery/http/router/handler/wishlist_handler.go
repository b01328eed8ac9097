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

// WishlistHandler serves the customer's wishlist.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// List returns the wishlist, newest first.
func (h *WishlistHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewWishlistItemDTOs(items), "")
}

// Add puts a product on the wishlist. Duplicates are a client error.
func (h *WishlistHandler) Add(c echo.Context) error {
	var input usecase.WishlistAddInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid wishlist input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.Add(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewWishlistItemDTO(item), "Added to wishlist")
}

// Remove deletes one wishlist entry.
func (h *WishlistHandler) Remove(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrWishlistItemNotFound
	}

	if err := h.uc.Remove(c.Request().Context(), deliverycontext.GetIdentity(c), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}
