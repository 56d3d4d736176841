package dto

import "github.com/BruksfildServices01/delivery-marketplace/internal/models"

// UserSummary is the public view of a user returned after auth calls.
type UserSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	IsBlocked  bool   `json:"isBlocked"`
	IsVerified bool   `json:"isVerified"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsBlocked:  u.IsBlocked,
		IsVerified: u.IsVerified,
	}
}

type AdminDashboard struct {
	UsersByRole          map[string]int64 `json:"usersByRole"`
	BlockedUsers         int64            `json:"blockedUsers"`
	DeliveryBoysByStatus map[string]int64 `json:"deliveryBoysByStatus"`
	RetailersByStatus    map[string]int64 `json:"retailersByStatus"`
}
