package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

var customerListSpec = listing.Spec{
	Sorts: map[string]string{
		"name":        "users.name",
		"email":       "users.email",
		"totalOrders": "customers.total_orders",
		"createdAt":   "users.created_at",
	},
	DefaultSort: "users.created_at",
	Tiebreak:    "users.id",
	Filters: map[string]string{
		"isBlocked":  "users.is_blocked",
		"isVerified": "users.is_verified",
	},
	SearchColumns: []string{
		"users.name",
		"users.email",
		"customers.phone",
		"CAST(users.id AS TEXT)",
	},
}

const customerRowColumns = `users.id AS id,
	users.name AS name,
	users.email AS email,
	COALESCE(NULLIF(customers.phone, ''), users.phone, '') AS phone,
	users.is_blocked AS is_blocked,
	users.is_verified AS is_verified,
	COALESCE(customers.profile_image_url, '') AS profile_image_url,
	COALESCE(customers.total_orders, 0) AS total_orders,
	COALESCE(customers.wallet_balance, 0) AS wallet_balance,
	users.created_at AS created_at`

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *CustomerGormRepository) GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetOrCreateCustomer is safe against concurrent first writes: the insert
// yields to an existing row on the user_id unique index.
func (r *CustomerGormRepository) GetOrCreateCustomer(ctx context.Context, userID uint) (*models.Customer, error) {
	c, err := r.customerByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err)
	}

	if err := insertCustomer(r.db.WithContext(ctx), userID); err != nil {
		return nil, translate(err)
	}

	c, err = r.customerByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) customerByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func insertCustomer(db *gorm.DB, userID uint) error {
	return db.
		Omit("User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&models.Customer{UserID: userID}).Error
}

func (r *CustomerGormRepository) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"phone":             c.Phone,
			"profile_image_url": c.ProfileImageURL,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Addresses
// --------------------------------------------------

func (r *CustomerGormRepository) ListAddresses(ctx context.Context, customerID uint) ([]models.Address, error) {
	out := []models.Address{}
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *CustomerGormRepository) GetAddress(ctx context.Context, customerID, addressID uint) (*models.Address, error) {
	var a models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", addressID, customerID).
		First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *CustomerGormRepository) AddAddress(ctx context.Context, customerID uint, a *models.Address) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCustomer(tx, customerID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Address{}).
			Where("customer_id = ?", customerID).
			Count(&existing).Error; err != nil {
			return err
		}

		a.ID = 0
		a.CustomerID = customerID
		a.IsDefault = customer.DefaultOnAdd(a.IsDefault, existing)

		if a.IsDefault {
			if err := clearDefaults(tx, customerID, 0); err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
	return translate(err)
}

func (r *CustomerGormRepository) UpdateAddress(ctx context.Context, customerID uint, a *models.Address) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCustomer(tx, customerID); err != nil {
			return err
		}

		if a.IsDefault {
			if err := clearDefaults(tx, customerID, a.ID); err != nil {
				return err
			}
		}

		res := tx.Model(&models.Address{}).
			Where("id = ? AND customer_id = ?", a.ID, customerID).
			Updates(map[string]any{
				"street":     a.Street,
				"city":       a.City,
				"state":      a.State,
				"zip_code":   a.ZipCode,
				"country":    a.Country,
				"is_default": a.IsDefault,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

func (r *CustomerGormRepository) DeleteAddress(ctx context.Context, customerID, addressID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", addressID, customerID).
		Delete(&models.Address{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *CustomerGormRepository) SetDefaultAddress(ctx context.Context, customerID, addressID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCustomer(tx, customerID); err != nil {
			return err
		}

		var a models.Address
		if err := tx.
			Where("id = ? AND customer_id = ?", addressID, customerID).
			First(&a).Error; err != nil {
			return err
		}
		if err := clearDefaults(tx, customerID, addressID); err != nil {
			return err
		}
		return tx.Model(&a).Update("is_default", true).Error
	})
	return translate(err)
}

// lockCustomer serialises address writes of one customer for the rest of tx.
// Every default change takes this lock first, so two of them can never both
// see the other's address as non-default.
func lockCustomer(tx *gorm.DB, customerID uint) error {
	return customerLockQuery(tx, customerID).Error
}

func customerLockQuery(tx *gorm.DB, customerID uint) *gorm.DB {
	var c models.Customer
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", customerID).
		First(&c)
}

// clearDefaults unsets IsDefault on every address of the customer except keep.
func clearDefaults(tx *gorm.DB, customerID, keep uint) error {
	return tx.Model(&models.Address{}).
		Where("customer_id = ? AND id <> ? AND is_default = ?", customerID, keep, true).
		Update("is_default", false).Error
}

// --------------------------------------------------
// Admin reads
// --------------------------------------------------

func (r *CustomerGormRepository) ListCustomers(ctx context.Context, p listing.Params) ([]dto.CustomerRow, int64, error) {
	q := r.db.
		Model(&models.User{}).
		Joins("LEFT JOIN customers ON customers.user_id = users.id").
		Where("users.role = ?", "customer")

	return listing.Find[dto.CustomerRow](ctx, q, customerListSpec, p, func(db *gorm.DB) *gorm.DB {
		return db.Select(customerRowColumns)
	})
}

// Compile-time check
var _ customer.Repository = (*CustomerGormRepository)(nil)
