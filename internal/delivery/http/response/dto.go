package response

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// The DTO layer is the only place entities are turned into JSON. Statuses
// and shop states leave the API lowercased, internal flags (IsApproved,
// IsRejected) collapse into a single state string, and derived values
// (totals, inStock) are computed here so clients never re-derive them.

// UserDTO is the client-facing view of a user account.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	District  string    `json:"district,omitempty"`
	Shop      *ShopDTO  `json:"shop,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserDTO shapes a user entity.
func NewUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
		District:  user.District,
		Shop:      NewShopDTO(user.Shop),
		CreatedAt: user.CreatedAt,
	}
}

// NewUserDTOs shapes a slice of users.
func NewUserDTOs(users []*entity.User) []*UserDTO {
	dtos := make([]*UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, NewUserDTO(user))
	}

	return dtos
}

// ShopDTO exposes the derived lifecycle state instead of the raw flag pair.
type ShopDTO struct {
	ID          uuid.UUID  `json:"id"`
	VendorID    uuid.UUID  `json:"vendorId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	District    string     `json:"district"`
	State       string     `json:"state"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewShopDTO shapes a vendor shop entity.
func NewShopDTO(shop *entity.VendorShop) *ShopDTO {
	if shop == nil {
		return nil
	}

	return &ShopDTO{
		ID:          shop.ID,
		VendorID:    shop.VendorID,
		Name:        shop.Name,
		Description: shop.Description,
		District:    shop.District,
		State:       string(shop.State()),
		RejectedAt:  shop.RejectedAt,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

// NewShopDTOs shapes a slice of shops.
func NewShopDTOs(shops []*entity.VendorShop) []*ShopDTO {
	dtos := make([]*ShopDTO, 0, len(shops))
	for _, shop := range shops {
		dtos = append(dtos, NewShopDTO(shop))
	}

	return dtos
}

// ProductDTO carries the public product shape; inStock is derived.
type ProductDTO struct {
	ID          uuid.UUID  `json:"id"`
	ShopID      uuid.UUID  `json:"shopId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	StockCount  int        `json:"stockCount"`
	InStock     bool       `json:"inStock"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewProductDTO shapes a product entity.
func NewProductDTO(product *entity.Product) *ProductDTO {
	if product == nil {
		return nil
	}

	images := product.Images
	if images == nil {
		images = []string{}
	}

	return &ProductDTO{
		ID:          product.ID,
		ShopID:      product.ShopID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		CategoryID:  product.CategoryID,
		StockCount:  product.StockCount,
		InStock:     product.InStock(),
		Images:      images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// NewProductDTOs shapes a slice of products.
func NewProductDTOs(products []*entity.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, NewProductDTO(product))
	}

	return dtos
}

// CategoryDTO is the shared category shape for public and admin surfaces.
type CategoryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	ProductCount int       `json:"productCount"`
}

// NewCategoryDTO shapes a category entity.
func NewCategoryDTO(category *entity.Category) *CategoryDTO {
	if category == nil {
		return nil
	}

	return &CategoryDTO{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		IsActive:     category.IsActive,
		ProductCount: category.ProductCount,
	}
}

// NewCategoryDTOs shapes a slice of categories.
func NewCategoryDTOs(categories []*entity.Category) []*CategoryDTO {
	dtos := make([]*CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, NewCategoryDTO(category))
	}

	return dtos
}

// CartItemDTO is one cart line with its current product and subtotal.
type CartItemDTO struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"productId"`
	Product   *ProductDTO `json:"product,omitempty"`
	Quantity  int         `json:"quantity"`
	Subtotal  float64     `json:"subtotal"`
}

// NewCartItemDTO shapes a cart item entity.
func NewCartItemDTO(item *entity.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}

	return &CartItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Product:   NewProductDTO(item.Product),
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal(),
	}
}

// CartDTO is the whole cart with its running total.
type CartDTO struct {
	Items []*CartItemDTO `json:"items"`
	Total float64        `json:"total"`
}

// NewCartDTO shapes the cart listing.
func NewCartDTO(items []*entity.CartItem, total float64) *CartDTO {
	dtos := make([]*CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, NewCartItemDTO(item))
	}

	return &CartDTO{Items: dtos, Total: total}
}

// WishlistItemDTO is one wishlist entry with its product.
type WishlistItemDTO struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"productId"`
	Product   *ProductDTO `json:"product,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewWishlistItemDTO shapes a wishlist item entity.
func NewWishlistItemDTO(item *entity.WishlistItem) *WishlistItemDTO {
	if item == nil {
		return nil
	}

	return &WishlistItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Product:   NewProductDTO(item.Product),
		CreatedAt: item.CreatedAt,
	}
}

// NewWishlistItemDTOs shapes a slice of wishlist items.
func NewWishlistItemDTOs(items []*entity.WishlistItem) []*WishlistItemDTO {
	dtos := make([]*WishlistItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, NewWishlistItemDTO(item))
	}

	return dtos
}

// OrderItemDTO is one immutable order line snapshot.
type OrderItemDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal"`
}

// NewOrderItemDTOs shapes order line snapshots.
func NewOrderItemDTOs(items []*entity.OrderItem) []*OrderItemDTO {
	dtos := make([]*OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, &OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}

	return dtos
}

// OrderDTO is the customer-facing order shape. Status is always lowercase
// on the wire regardless of how it is stored.
type OrderDTO struct {
	ID              uuid.UUID               `json:"id"`
	Status          string                  `json:"status"`
	Items           []*OrderItemDTO         `json:"items"`
	Total           float64                 `json:"total"`
	ShippingAddress *entity.ShippingAddress `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// NewOrderDTO shapes an order; the address is attached only on single-order
// reads where it has been parsed.
func NewOrderDTO(order *entity.Order, address *entity.ShippingAddress) *OrderDTO {
	if order == nil {
		return nil
	}

	return &OrderDTO{
		ID:              order.ID,
		Status:          order.Status.External(),
		Items:           NewOrderItemDTOs(order.Items),
		Total:           order.Total(),
		ShippingAddress: address,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// NewOrderDTOs shapes a slice of orders for listings.
func NewOrderDTOs(orders []*entity.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, NewOrderDTO(order, nil))
	}

	return dtos
}

// VendorOrderDTO is the vendor-scoped order projection: only the vendor's
// own lines and their subtotal appear, never the order-wide total.
type VendorOrderDTO struct {
	OrderID       uuid.UUID       `json:"orderId"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	District      string          `json:"district"`
	Items         []*OrderItemDTO `json:"items"`
	VendorTotal   float64         `json:"vendorTotal"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewVendorOrderDTO shapes a vendor order projection.
func NewVendorOrderDTO(view *entity.VendorOrderView) *VendorOrderDTO {
	if view == nil {
		return nil
	}

	return &VendorOrderDTO{
		OrderID:       view.OrderID,
		Status:        view.Status.External(),
		CustomerName:  view.CustomerName,
		CustomerEmail: view.CustomerEmail,
		District:      view.District,
		Items:         NewOrderItemDTOs(view.Items),
		VendorTotal:   view.VendorTotal,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

// NewVendorOrderDTOs shapes a slice of vendor order projections.
func NewVendorOrderDTOs(views []*entity.VendorOrderView) []*VendorOrderDTO {
	dtos := make([]*VendorOrderDTO, 0, len(views))
	for _, view := range views {
		dtos = append(dtos, NewVendorOrderDTO(view))
	}

	return dtos
}

// SessionDTO is the reply to login and refresh: the token pair plus the
// shaped account.
type SessionDTO struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         *UserDTO `json:"user"`
}
