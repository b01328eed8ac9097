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

// ChangeRoleInput carries the new role for a user.
type ChangeRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// AdminHandler serves both the platform admin surface and the regional
// admin surface. The routes differ only in the role gate; district scoping
// is decided in the use cases from the caller's identity.
type AdminHandler struct {
	admin     usecase.AdminUsecase
	lifecycle usecase.VendorLifecycleUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(admin usecase.AdminUsecase, lifecycle usecase.VendorLifecycleUsecase) *AdminHandler {
	return &AdminHandler{admin: admin, lifecycle: lifecycle}
}

// ListUsers lists accounts, optionally filtered by role. Regional admins
// only ever see their own district.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var input usecase.AdminUserListInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid user filter", "")
	}

	users, err := h.admin.ListUsers(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserDTOs(users), "")
}

// ChangeRole sets a user's role, keeping the role and shop consistent.
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	targetUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	var input ChangeRoleInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid role input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.lifecycle.ChangeRole(c.Request().Context(), deliverycontext.GetIdentity(c), targetUserID, input.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserDTO(user), "Role updated")
}

// ListShops lists vendor shops, optionally filtered by lifecycle state.
func (h *AdminHandler) ListShops(c echo.Context) error {
	var input usecase.AdminShopListInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid shop filter", "")
	}

	shops, err := h.admin.ListShops(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewShopDTOs(shops), "")
}

// ApproveShop moves a pending or rejected shop to approved.
func (h *AdminHandler) ApproveShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrShopNotFound
	}

	shop, err := h.lifecycle.ApproveShop(c.Request().Context(), deliverycontext.GetIdentity(c), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewShopDTO(shop), "Shop approved")
}

// RejectShop moves a pending or approved shop to rejected.
func (h *AdminHandler) RejectShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrShopNotFound
	}

	shop, err := h.lifecycle.RejectShop(c.Request().Context(), deliverycontext.GetIdentity(c), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewShopDTO(shop), "Shop rejected")
}

// ListCategories lists every category, active or not.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.admin.ListCategories(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCategoryDTOs(categories), "")
}

// CreateCategory adds a taxonomy entry. Platform admins only.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid category input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.admin.CreateCategory(c.Request().Context(), deliverycontext.GetIdentity(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewCategoryDTO(category), "Category created")
}

// UpdateCategory edits a taxonomy entry. Platform admins only.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	var input usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid category input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.admin.UpdateCategory(c.Request().Context(), deliverycontext.GetIdentity(c), categoryID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCategoryDTO(category), "Category updated")
}
