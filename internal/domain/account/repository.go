package account

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type Repository interface {
	// -------- Lookup --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// -------- Registration (user + role profile in one transaction) --------
	CreateUser(ctx context.Context, u *models.User) error
	RegisterCustomer(ctx context.Context, u *models.User, c *models.Customer) error
	RegisterRetailer(ctx context.Context, u *models.User, shop *models.RetailerShop) error
	RegisterDeliveryBoy(ctx context.Context, u *models.User, d *models.DeliveryBoy) error

	// -------- Mutations --------
	UpdateUserName(ctx context.Context, id uint, name string) error
	SetUserBlocked(ctx context.Context, id uint, blocked bool) error

	// -------- Admin reads --------
	ListUsers(ctx context.Context, p listing.Params) ([]models.User, int64, error)
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountBlockedUsers(ctx context.Context) (int64, error)
}
