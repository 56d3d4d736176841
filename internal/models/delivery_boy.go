package models

import "time"

type DeliveryBoy struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	Phone   string     `gorm:"size:20" json:"phone"`
	Address string     `gorm:"size:255" json:"address"`
	City    string     `gorm:"size:100" json:"city"`
	State   string     `gorm:"size:100" json:"state"`
	ZipCode string     `gorm:"size:20" json:"zipCode"`
	DOB     *time.Time `json:"dob"`

	ProfileImageURL      string `gorm:"size:512" json:"profileImageUrl"`
	VerificationImageURL string `gorm:"size:512" json:"verificationImageUrl"`

	IsVerified         bool   `gorm:"not null;default:false" json:"isVerified"`
	VerificationStatus string `gorm:"size:20;not null;default:'pending';index" json:"verificationStatus"`

	TotalDeliveredOrders int  `gorm:"not null;default:0" json:"totalDeliveredOrders"`
	CurrentlyAvailable   bool `gorm:"not null;default:false" json:"currentlyAvailable"`

	VehicleType   string `gorm:"size:50" json:"vehicleType"`
	VehicleNumber string `gorm:"size:50" json:"vehicleNumber"`
	DLNumber      string `gorm:"size:50" json:"dlNumber"`

	Reviews []Review `gorm:"polymorphic:Subject;polymorphicValue:deliveryBoy" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
