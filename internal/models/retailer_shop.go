package models

import "time"

type ShopAddress struct {
	Street  string `gorm:"size:255" json:"street"`
	Area    string `gorm:"size:100" json:"area"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	ZipCode string `gorm:"size:20" json:"zipCode"`
	Country string `gorm:"size:100" json:"country"`
}

type RetailerShop struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	ShopName    string `gorm:"size:150;not null" json:"shopName"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"size:1000" json:"description"`

	ShopImageURL   string `gorm:"size:512" json:"shopImageUrl"`
	ShopLicenseURL string `gorm:"size:512" json:"shopLicenseUrl"`

	Address ShopAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Rating  float64  `gorm:"not null;default:0" json:"rating"`
	Reviews []Review `gorm:"polymorphic:Subject;polymorphicValue:retailer" json:"reviews,omitempty"`

	IsVerified         bool   `gorm:"not null;default:false" json:"isVerified"`
	VerificationStatus string `gorm:"size:20;not null;default:'pending';index" json:"verificationStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
