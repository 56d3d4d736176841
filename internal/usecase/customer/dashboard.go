package customer

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	domaincustomer "github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
)

type Dashboard struct {
	users     account.Repository
	customers domaincustomer.Repository
}

func NewDashboard(users account.Repository, customers domaincustomer.Repository) *Dashboard {
	return &Dashboard{users: users, customers: customers}
}

func (uc *Dashboard) Execute(ctx context.Context, userID uint) (dto.CustomerDashboard, error) {
	u, c, err := load(ctx, uc.users, uc.customers, userID)
	if err != nil {
		return dto.CustomerDashboard{}, err
	}

	out := dto.CustomerDashboard{Name: u.Name, Email: u.Email}
	if c == nil {
		return out, nil
	}

	out.TotalOrders = c.TotalOrders
	out.WalletBalance = c.WalletBalance
	out.AddressCount = len(c.Addresses)
	out.DefaultAddress = domaincustomer.DefaultAddress(c.Addresses)
	return out, nil
}
