package entity_test

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, ok := entity.ParseOrderStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, entity.OrderStatusShipped, status)

	status, ok = entity.ParseOrderStatus("  PENDING ")
	assert.True(t, ok)
	assert.Equal(t, entity.OrderStatusPending, status)

	_, ok = entity.ParseOrderStatus("teleported")
	assert.False(t, ok)

	_, ok = entity.ParseOrderStatus("")
	assert.False(t, ok)
}

func TestOrderStatus_External(t *testing.T) {
	assert.Equal(t, "processing", entity.OrderStatusProcessing.External())
	assert.Equal(t, "PROCESSING", entity.OrderStatusProcessing.String())
}

func TestOrder_Total(t *testing.T) {
	order := &entity.Order{
		Items: []*entity.OrderItem{
			{Price: 12.5, Quantity: 2},
			{Price: 40, Quantity: 1},
		},
	}

	assert.InDelta(t, 65, order.Total(), 0.001)
	assert.InDelta(t, 0, (&entity.Order{}).Total(), 0.001)
}

func TestOrder_VendorView(t *testing.T) {
	shopID := uuid.New()
	otherShopID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		Status:   entity.OrderStatusPending,
		District: "west",
		Customer: &entity.User{FirstName: "Nina", LastName: "Chu", Email: "nina@example.com"},
		Items: []*entity.OrderItem{
			{ShopID: shopID, ProductName: "Oolong Tea", Price: 12.5, Quantity: 2},
			{ShopID: otherShopID, ProductName: "Incense", Price: 99, Quantity: 3},
		},
	}

	view, ok := order.VendorView(shopID)
	require.True(t, ok)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Oolong Tea", view.Items[0].ProductName)
	assert.InDelta(t, 25, view.VendorTotal, 0.001)
	assert.Equal(t, "Nina Chu", view.CustomerName)
	assert.Equal(t, "west", view.District)

	// The full order total never leaks through the projection.
	assert.Less(t, view.VendorTotal, order.Total())
}

func TestOrder_VendorView_NoItemsForShop(t *testing.T) {
	order := &entity.Order{
		Items: []*entity.OrderItem{{ShopID: uuid.New()}},
	}

	view, ok := order.VendorView(uuid.New())
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestOrder_ContainsShop(t *testing.T) {
	shopID := uuid.New()
	order := &entity.Order{Items: []*entity.OrderItem{{ShopID: shopID}}}

	assert.True(t, order.ContainsShop(shopID))
	assert.False(t, order.ContainsShop(uuid.New()))
}

func TestShippingAddress_RoundTrip(t *testing.T) {
	addr := &entity.ShippingAddress{
		Line1:      "12 Harbor Road",
		City:       "Kaohsiung",
		District:   "south",
		PostalCode: "80145",
	}

	raw, err := addr.Serialize()
	require.NoError(t, err)

	decoded, err := entity.ParseShippingAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, addr, decoded)
}

func TestParseShippingAddress_Malformed(t *testing.T) {
	_, err := entity.ParseShippingAddress("{not json")
	assert.ErrorIs(t, err, entity.ErrMalformedAddress)
}
