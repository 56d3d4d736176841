package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

func TestNewProfile_DefaultsWithoutCustomer(t *testing.T) {
	u := &models.User{ID: 3, Name: "Ann", Email: "ann@example.com", Role: "customer", Phone: "999"}

	p := NewProfile(u, nil)

	assert.Equal(t, "", p.Phone)
	assert.NotNil(t, p.Addresses)
	assert.Empty(t, p.Addresses)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"addresses":[]`)
	assert.Contains(t, string(raw), `"phone":""`)
}

func TestNewProfile_MergesCustomer(t *testing.T) {
	u := &models.User{ID: 3, Name: "Ann"}
	c := &models.Customer{
		Phone:         "12345",
		TotalOrders:   4,
		WalletBalance: 10.5,
		Addresses:     []models.Address{{ID: 1, IsDefault: true}},
	}

	p := NewProfile(u, c)

	assert.Equal(t, "12345", p.Phone)
	assert.Equal(t, 4, p.TotalOrders)
	assert.Equal(t, 10.5, p.WalletBalance)
	assert.Len(t, p.Addresses, 1)
}
