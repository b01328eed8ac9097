package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public, unauthenticated browsing surface.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts lists in-stock products of approved shops, optionally
// filtered by category and name search.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var input usecase.ProductListInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product filter", "")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewProductDTOs(products), "")
}

// GetProduct retrieves one publicly visible product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewProductDTO(product), "")
}

// ListCategories lists active categories with live product counts.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCategoryDTOs(categories), "")
}
