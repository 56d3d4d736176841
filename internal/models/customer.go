package models

import "time"

type Customer struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	Phone           string    `gorm:"size:20" json:"phone"`
	Addresses       []Address `gorm:"foreignKey:CustomerID" json:"addresses"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl"`
	TotalOrders     int       `gorm:"not null;default:0" json:"totalOrders"`
	WalletBalance   float64   `gorm:"not null;default:0" json:"walletBalance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Address belongs to a customer. At most one address per customer has
// IsDefault set; the repository keeps that true inside a transaction.
type Address struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"index;not null" json:"customerId"`

	Street    string `gorm:"size:255;not null" json:"street"`
	City      string `gorm:"size:100;not null" json:"city"`
	State     string `gorm:"size:100" json:"state"`
	ZipCode   string `gorm:"size:20" json:"zipCode"`
	Country   string `gorm:"size:100" json:"country"`
	IsDefault bool   `gorm:"not null;default:false" json:"isDefault"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
