package customer

import "github.com/BruksfildServices01/delivery-marketplace/internal/models"

// DefaultOnAdd reports whether a new address becomes the default: either it
// was asked for, or it is the customer's first address.
func DefaultOnAdd(requested bool, existing int64) bool {
	return requested || existing == 0
}

// DefaultAddress returns the default address, if any.
func DefaultAddress(addrs []models.Address) *models.Address {
	for i := range addrs {
		if addrs[i].IsDefault {
			return &addrs[i]
		}
	}
	return nil
}

// AddressPatch carries the fields of a partial address update.
type AddressPatch struct {
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	IsDefault *bool
}

func (p AddressPatch) ApplyTo(a *models.Address) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.ZipCode != nil {
		a.ZipCode = *p.ZipCode
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
}
