package response

import (
	"encoding/json"
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopDTO_CollapsesFlagsIntoState(t *testing.T) {
	rejectedAt := time.Now()
	rejectedBy := uuid.New()
	shop := &entity.VendorShop{
		ID:         uuid.New(),
		Name:       "Night Market Stall",
		IsRejected: true,
		RejectedAt: &rejectedAt,
		RejectedBy: &rejectedBy,
	}

	dto := NewShopDTO(shop)
	assert.Equal(t, "rejected", dto.State)
	require.NotNil(t, dto.RejectedAt)

	// The raw flag pair never reaches the wire.
	data, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "isApproved")
	assert.NotContains(t, string(data), "IsRejected")
	assert.NotContains(t, string(data), "rejectedBy")

	assert.Equal(t, "pending", NewShopDTO(&entity.VendorShop{}).State)
	assert.Nil(t, NewShopDTO(nil))
}

func TestNewProductDTO_DerivesInStockAndImages(t *testing.T) {
	dto := NewProductDTO(&entity.Product{Name: "Oolong Tea", StockCount: 3})
	assert.True(t, dto.InStock)
	assert.NotNil(t, dto.Images)
	assert.Empty(t, dto.Images)

	dto = NewProductDTO(&entity.Product{Name: "Sold Out", StockCount: 0})
	assert.False(t, dto.InStock)

	// nil Images still marshals as [] rather than null.
	data, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"images":[]`)
}

func TestNewOrderDTO_LowercasesStatus(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusShipped,
		Items: []*entity.OrderItem{
			{ProductName: "Oolong Tea", Price: 12.5, Quantity: 2},
		},
	}

	dto := NewOrderDTO(order, nil)
	assert.Equal(t, "shipped", dto.Status)
	assert.InDelta(t, 25, dto.Total, 0.001)
	assert.InDelta(t, 25, dto.Items[0].Subtotal, 0.001)
	assert.Nil(t, dto.ShippingAddress)

	address := &entity.ShippingAddress{City: "Kaohsiung"}
	assert.Equal(t, address, NewOrderDTO(order, address).ShippingAddress)
}

func TestNewCartDTO(t *testing.T) {
	items := []*entity.CartItem{
		{ID: uuid.New(), Quantity: 2, Product: &entity.Product{Price: 10, StockCount: 5}},
	}

	dto := NewCartDTO(items, 20)
	require.Len(t, dto.Items, 1)
	assert.InDelta(t, 20, dto.Total, 0.001)
	assert.InDelta(t, 20, dto.Items[0].Subtotal, 0.001)

	empty := NewCartDTO(nil, 0)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}

func TestNewVendorOrderDTO(t *testing.T) {
	view := &entity.VendorOrderView{
		OrderID:      uuid.New(),
		Status:       entity.OrderStatusProcessing,
		CustomerName: "Nina Chu",
		Items: []*entity.OrderItem{
			{ProductName: "Oolong Tea", Price: 12.5, Quantity: 2},
		},
		VendorTotal: 25,
	}

	dto := NewVendorOrderDTO(view)
	assert.Equal(t, "processing", dto.Status)
	assert.InDelta(t, 25, dto.VendorTotal, 0.001)
	assert.Equal(t, "Nina Chu", dto.CustomerName)

	// The wire shape exposes vendorTotal, never an order-wide total.
	data, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"vendorTotal"`)
	assert.NotContains(t, string(data), `"total"`)
}

func TestNewUserDTO_NestedShop(t *testing.T) {
	user := &entity.User{
		ID:    uuid.New(),
		Email: "vendor@example.com",
		Role:  entity.RoleVendor,
		Shop:  &entity.VendorShop{Name: "Night Market Stall", IsApproved: true},
	}

	dto := NewUserDTO(user)
	assert.Equal(t, "vendor", dto.Role)
	require.NotNil(t, dto.Shop)
	assert.Equal(t, "approved", dto.Shop.State)

	assert.Nil(t, NewUserDTO(&entity.User{}).Shop)
}
