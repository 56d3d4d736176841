package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

func TestDefaultOnAdd(t *testing.T) {
	assert.True(t, DefaultOnAdd(false, 0))
	assert.True(t, DefaultOnAdd(true, 3))
	assert.False(t, DefaultOnAdd(false, 1))
}

func TestDefaultAddress(t *testing.T) {
	assert.Nil(t, DefaultAddress(nil))

	addrs := []models.Address{{ID: 1}, {ID: 2, IsDefault: true}}
	got := DefaultAddress(addrs)
	if assert.NotNil(t, got) {
		assert.Equal(t, uint(2), got.ID)
	}
}

func TestAddressPatch_ApplyTo(t *testing.T) {
	city := "Pune"
	def := true
	a := models.Address{Street: "1 Main", City: "Mumbai"}

	AddressPatch{City: &city, IsDefault: &def}.ApplyTo(&a)

	assert.Equal(t, "1 Main", a.Street)
	assert.Equal(t, "Pune", a.City)
	assert.True(t, a.IsDefault)
}
