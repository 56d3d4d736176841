package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	domaincustomer "github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/validators"
)

// Addresses groups the address book operations of the calling customer.
// Every address id is resolved inside the caller's own customer row.
type Addresses struct {
	customers domaincustomer.Repository
}

func NewAddresses(customers domaincustomer.Repository) *Addresses {
	return &Addresses{customers: customers}
}

func (uc *Addresses) List(ctx context.Context, userID uint) ([]models.Address, error) {
	c, err := uc.customers.GetCustomerByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return []models.Address{}, nil
	}
	if err != nil {
		return nil, err
	}
	return uc.customers.ListAddresses(ctx, c.ID)
}

// Add stores a new address. The customer's first address is always the
// default one.
func (uc *Addresses) Add(ctx context.Context, userID uint, a models.Address) (*models.Address, error) {
	trimAddress(&a)
	if err := validateAddress(&a); err != nil {
		return nil, err
	}

	c, err := uc.customers.GetOrCreateCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.customers.AddAddress(ctx, c.ID, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (uc *Addresses) Update(
	ctx context.Context,
	userID uint,
	addressID uint,
	patch domaincustomer.AddressPatch,
) (*models.Address, error) {

	c, a, err := uc.owned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(a)
	trimAddress(a)
	if err := validateAddress(a); err != nil {
		return nil, err
	}

	if err := uc.customers.UpdateAddress(ctx, c.ID, a); err != nil {
		return nil, notFound(err, "address_not_found")
	}
	return a, nil
}

// Delete removes the address. Removing the default does not promote another.
func (uc *Addresses) Delete(ctx context.Context, userID, addressID uint) error {
	c, _, err := uc.owned(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return notFound(uc.customers.DeleteAddress(ctx, c.ID, addressID), "address_not_found")
}

// SetDefault makes addressID the only default and returns the address book.
func (uc *Addresses) SetDefault(ctx context.Context, userID, addressID uint) ([]models.Address, error) {
	c, _, err := uc.owned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	if err := uc.customers.SetDefaultAddress(ctx, c.ID, addressID); err != nil {
		return nil, notFound(err, "address_not_found")
	}
	return uc.customers.ListAddresses(ctx, c.ID)
}

func (uc *Addresses) owned(ctx context.Context, userID, addressID uint) (*models.Customer, *models.Address, error) {
	c, err := uc.customers.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return nil, nil, notFound(err, "address_not_found")
	}
	a, err := uc.customers.GetAddress(ctx, c.ID, addressID)
	if err != nil {
		return nil, nil, notFound(err, "address_not_found")
	}
	return c, a, nil
}

func trimAddress(a *models.Address) {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.ZipCode = strings.TrimSpace(a.ZipCode)
	a.Country = strings.TrimSpace(a.Country)
}

func validateAddress(a *models.Address) error {
	switch {
	case a.Street == "":
		return httperr.ErrBusinessMsg("invalid_address", "Street is required")
	case a.City == "":
		return httperr.ErrBusinessMsg("invalid_address", "City is required")
	case a.ZipCode != "" && !validators.IsZipCode(a.ZipCode):
		return httperr.ErrBusinessMsg("invalid_address", "Zip code is not valid")
	}
	return nil
}
