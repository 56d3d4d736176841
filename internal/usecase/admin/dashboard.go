package admin

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
)

type Dashboard struct {
	users account.Repository
	boys  verification.DeliveryBoyRepository
	shops verification.RetailerRepository
}

func NewDashboard(
	users account.Repository,
	boys verification.DeliveryBoyRepository,
	shops verification.RetailerRepository,
) *Dashboard {
	return &Dashboard{users: users, boys: boys, shops: shops}
}

// Execute reports every role and status, zero counts included.
func (uc *Dashboard) Execute(ctx context.Context) (dto.AdminDashboard, error) {
	byRole, err := uc.users.CountUsersByRole(ctx)
	if err != nil {
		return dto.AdminDashboard{}, err
	}
	blocked, err := uc.users.CountBlockedUsers(ctx)
	if err != nil {
		return dto.AdminDashboard{}, err
	}
	boys, err := uc.boys.CountDeliveryBoysByStatus(ctx)
	if err != nil {
		return dto.AdminDashboard{}, err
	}
	shops, err := uc.shops.CountRetailersByStatus(ctx)
	if err != nil {
		return dto.AdminDashboard{}, err
	}

	roles := []string{
		string(account.RoleAdmin),
		string(account.RoleCustomer),
		string(account.RoleRetailer),
		string(account.RoleDeliveryBoy),
	}
	statuses := []string{
		string(verification.StatusPending),
		string(verification.StatusApproved),
		string(verification.StatusRejected),
	}

	return dto.AdminDashboard{
		UsersByRole:          withKeys(byRole, roles),
		BlockedUsers:         blocked,
		DeliveryBoysByStatus: withKeys(boys, statuses),
		RetailersByStatus:    withKeys(shops, statuses),
	}, nil
}

func withKeys(m map[string]int64, keys []string) map[string]int64 {
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[k] = 0
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}
