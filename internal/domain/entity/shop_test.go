package entity_test

import (
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorShop_StateTransitions(t *testing.T) {
	shop := &entity.VendorShop{}
	assert.Equal(t, entity.ShopStatePending, shop.State())
	assert.False(t, shop.IsPubliclyVisible())

	shop.Approve()
	assert.Equal(t, entity.ShopStateApproved, shop.State())
	assert.True(t, shop.IsPubliclyVisible())

	actor := uuid.New()
	at := time.Now()
	shop.Reject(actor, at)
	assert.Equal(t, entity.ShopStateRejected, shop.State())
	assert.False(t, shop.IsPubliclyVisible())
	assert.False(t, shop.IsApproved)
	require.NotNil(t, shop.RejectedBy)
	assert.Equal(t, actor, *shop.RejectedBy)
	require.NotNil(t, shop.RejectedAt)
	assert.True(t, shop.RejectedAt.Equal(at))
}

func TestVendorShop_ReApprovalClearsRejection(t *testing.T) {
	shop := &entity.VendorShop{}
	shop.Reject(uuid.New(), time.Now())

	shop.Approve()
	assert.Equal(t, entity.ShopStateApproved, shop.State())
	assert.Nil(t, shop.RejectedBy)
	assert.Nil(t, shop.RejectedAt)
}

func TestNewPlaceholderShop(t *testing.T) {
	vendorID := uuid.New()
	shop := entity.NewPlaceholderShop(vendorID, "west")

	assert.Equal(t, vendorID, shop.VendorID)
	assert.Equal(t, "west", shop.District)
	assert.Equal(t, entity.ShopStatePending, shop.State())
	assert.NotEmpty(t, shop.Name)
}
