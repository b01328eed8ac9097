package usecase

import (
	"context"

	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductListInput filters the public product listing.
type ProductListInput struct {
	CategoryID string `query:"categoryId"`
	Search     string `query:"search"`
}

// CatalogUsecase is the public, unauthenticated storefront surface.
// Only products of approved shops are ever returned, and category
// listings carry a product count restricted the same way.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ProductListInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// --- Vendor self-service DTOs ---

// ShopUpdateInput carries the fields a vendor may edit on their own shop.
type ShopUpdateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	District    string `json:"district" validate:"required"`
}

// ProductInput carries product fields for create and update.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category"`
	CategoryID  string   `json:"categoryId"`
	StockCount  int      `json:"stockCount" validate:"gte=0"`
	Images      []string `json:"images"`
}

// VendorShopUsecase is the vendor's own shop and inventory surface.
// Every operation resolves the shop from the identity, so a vendor can
// never reach another vendor's records through these methods.
type VendorShopUsecase interface {
	GetShop(ctx context.Context, identity *authz.Identity) (*entity.VendorShop, error)
	UpdateShop(ctx context.Context, identity *authz.Identity, input *ShopUpdateInput) (*entity.VendorShop, error)

	ListProducts(ctx context.Context, identity *authz.Identity) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, identity *authz.Identity, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, identity *authz.Identity, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, identity *authz.Identity, productID uuid.UUID) error
}
