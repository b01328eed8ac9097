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

// UpdateOrderStatusInput carries the new status for a vendor order update.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// VendorHandler serves the vendor dashboard: own shop, own products and the
// vendor-scoped view of orders.
type VendorHandler struct {
	shop   usecase.VendorShopUsecase
	orders usecase.VendorOrderUsecase
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(shop usecase.VendorShopUsecase, orders usecase.VendorOrderUsecase) *VendorHandler {
	return &VendorHandler{shop: shop, orders: orders}
}

// GetShop returns the caller's own shop, whatever its approval state.
func (h *VendorHandler) GetShop(c echo.Context) error {
	shop, err := h.shop.GetShop(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewShopDTO(shop), "")
}

// UpdateShop edits the shop's descriptive fields. Approval flags are only
// reachable through the admin lifecycle routes.
func (h *VendorHandler) UpdateShop(c echo.Context) error {
	var input usecase.ShopUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid shop input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	shop, err := h.shop.UpdateShop(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewShopDTO(shop), "Shop updated")
}

// ListProducts lists the caller's products, including out-of-stock ones.
func (h *VendorHandler) ListProducts(c echo.Context) error {
	products, err := h.shop.ListProducts(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewProductDTOs(products), "")
}

// CreateProduct adds a product to the caller's shop.
func (h *VendorHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.shop.CreateProduct(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewProductDTO(product), "Product created")
}

// UpdateProduct replaces the fields of one of the caller's products.
func (h *VendorHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.shop.UpdateProduct(c.Request().Context(), deliverycontext.GetIdentity(c), productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewProductDTO(product), "Product updated")
}

// DeleteProduct removes one of the caller's products.
func (h *VendorHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	if err := h.shop.DeleteProduct(c.Request().Context(), deliverycontext.GetIdentity(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ListOrders lists orders containing the caller's items, projected onto the
// caller's shop with vendor-scoped totals.
func (h *VendorHandler) ListOrders(c echo.Context) error {
	var input usecase.VendorOrderListInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid order filter", "")
	}

	views, err := h.orders.List(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewVendorOrderDTOs(views), "")
}

// UpdateOrderStatus sets the fulfillment status of an order that contains
// the caller's items.
func (h *VendorHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	var input UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid status input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.orders.UpdateStatus(c.Request().Context(), deliverycontext.GetIdentity(c), orderID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewVendorOrderDTO(view), "Order status updated")
}
