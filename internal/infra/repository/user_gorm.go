package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

var userListSpec = listing.Spec{
	Sorts: map[string]string{
		"name":      "users.name",
		"email":     "users.email",
		"role":      "users.role",
		"createdAt": "users.created_at",
	},
	DefaultSort: "users.created_at",
	Tiebreak:    "users.id",
	Filters: map[string]string{
		"role":       "users.role",
		"isBlocked":  "users.is_blocked",
		"isVerified": "users.is_verified",
	},
	SearchColumns: []string{"users.name", "users.email", "CAST(users.id AS TEXT)"},
}

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *UserGormRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Registration
// --------------------------------------------------

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) RegisterCustomer(ctx context.Context, u *models.User, c *models.Customer) error {
	return r.register(ctx, u, func(tx *gorm.DB) error {
		c.UserID = u.ID
		return tx.Omit("User").Create(c).Error
	})
}

func (r *UserGormRepository) RegisterRetailer(ctx context.Context, u *models.User, shop *models.RetailerShop) error {
	return r.register(ctx, u, func(tx *gorm.DB) error {
		shop.UserID = u.ID
		return tx.Omit("User").Create(shop).Error
	})
}

func (r *UserGormRepository) RegisterDeliveryBoy(ctx context.Context, u *models.User, d *models.DeliveryBoy) error {
	return r.register(ctx, u, func(tx *gorm.DB) error {
		d.UserID = u.ID
		return tx.Omit("User").Create(d).Error
	})
}

func (r *UserGormRepository) register(ctx context.Context, u *models.User, profile func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return profile(tx)
	})
	return translate(err)
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *UserGormRepository) UpdateUserName(ctx context.Context, id uint, name string) error {
	return r.updateUser(ctx, id, "name", name)
}

func (r *UserGormRepository) SetUserBlocked(ctx context.Context, id uint, blocked bool) error {
	return r.updateUser(ctx, id, "is_blocked", blocked)
}

func (r *UserGormRepository) updateUser(ctx context.Context, id uint, col string, value any) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update(col, value)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Admin reads
// --------------------------------------------------

func (r *UserGormRepository) ListUsers(ctx context.Context, p listing.Params) ([]models.User, int64, error) {
	return listing.Find[models.User](ctx, r.db.Model(&models.User{}), userListSpec, p)
}

func (r *UserGormRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	return countBy(r.db.WithContext(ctx).Model(&models.User{}), "role")
}

func (r *UserGormRepository) CountBlockedUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_blocked = ?", true).
		Count(&n).Error
	return n, err
}

// Compile-time check
var _ account.Repository = (*UserGormRepository)(nil)
