package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("deliveryBoy")
	assert.True(t, ok)
	assert.Equal(t, RoleDeliveryBoy, r)

	_, ok = ParseRole("DeliveryBoy")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In([]Role{RoleCustomer, RoleAdmin}))
	assert.False(t, RoleCustomer.In([]Role{RoleAdmin}))
	assert.False(t, RoleCustomer.In(nil))
}

func TestRole_SelfRegistrable(t *testing.T) {
	assert.False(t, RoleAdmin.SelfRegistrable())
	assert.True(t, RoleCustomer.SelfRegistrable())
	assert.True(t, RoleRetailer.SelfRegistrable())
	assert.True(t, RoleDeliveryBoy.SelfRegistrable())
}
