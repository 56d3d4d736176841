package customer

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error)
	GetOrCreateCustomer(ctx context.Context, userID uint) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, c *models.Customer) error

	// -------- Addresses --------
	// Every write that sets IsDefault clears the other defaults of the same
	// customer in the same transaction.
	ListAddresses(ctx context.Context, customerID uint) ([]models.Address, error)
	AddAddress(ctx context.Context, customerID uint, a *models.Address) error
	UpdateAddress(ctx context.Context, customerID uint, a *models.Address) error
	DeleteAddress(ctx context.Context, customerID uint, addressID uint) error
	SetDefaultAddress(ctx context.Context, customerID uint, addressID uint) error
	GetAddress(ctx context.Context, customerID uint, addressID uint) (*models.Address, error)

	// -------- Admin reads --------
	ListCustomers(ctx context.Context, p listing.Params) ([]dto.CustomerRow, int64, error)
}
