package dto

import (
	"time"

	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// CustomerRow is one line of the admin customer listing: the user joined with
// the optional customer profile.
type CustomerRow struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	IsBlocked       bool      `json:"isBlocked"`
	IsVerified      bool      `json:"isVerified"`
	ProfileImageURL string    `json:"profileImageUrl"`
	TotalOrders     int       `json:"totalOrders"`
	WalletBalance   float64   `json:"walletBalance"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Profile merges a user and its customer record. Missing customer data is
// reported with zero values.
type Profile struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	Phone           string           `json:"phone"`
	ProfileImageURL string           `json:"profileImageUrl"`
	Addresses       []models.Address `json:"addresses"`
	TotalOrders     int              `json:"totalOrders"`
	WalletBalance   float64          `json:"walletBalance"`
}

func NewProfile(u *models.User, c *models.Customer) Profile {
	p := Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     "",
		Addresses: []models.Address{},
	}
	if c == nil {
		return p
	}

	p.Phone = c.Phone
	p.ProfileImageURL = c.ProfileImageURL
	p.TotalOrders = c.TotalOrders
	p.WalletBalance = c.WalletBalance
	if c.Addresses != nil {
		p.Addresses = c.Addresses
	}
	return p
}

type CustomerDashboard struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	TotalOrders    int             `json:"totalOrders"`
	WalletBalance  float64         `json:"walletBalance"`
	AddressCount   int             `json:"addressCount"`
	DefaultAddress *models.Address `json:"defaultAddress,omitempty"`
}
