package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

var retailerListSpec = listing.Spec{
	Sorts: map[string]string{
		"name":               "users.name",
		"email":              "users.email",
		"shopName":           "retailer_shops.shop_name",
		"rating":             "retailer_shops.rating",
		"verificationStatus": "retailer_shops.verification_status",
		"createdAt":          "retailer_shops.created_at",
	},
	DefaultSort: "retailer_shops.created_at",
	Tiebreak:    "retailer_shops.id",
	Filters: map[string]string{
		"verificationStatus": "retailer_shops.verification_status",
		"isVerified":         "retailer_shops.is_verified",
		"city":               "retailer_shops.address_city",
		"state":              "retailer_shops.address_state",
		"isBlocked":          "users.is_blocked",
	},
	SearchColumns: []string{
		"users.name",
		"users.email",
		"retailer_shops.shop_name",
		"CAST(retailer_shops.id AS TEXT)",
	},
}

type RetailerGormRepository struct {
	db *gorm.DB
}

func NewRetailerGormRepository(db *gorm.DB) *RetailerGormRepository {
	return &RetailerGormRepository{db: db}
}

func (r *RetailerGormRepository) GetRetailerByID(ctx context.Context, id uint) (*models.RetailerShop, error) {
	var shop models.RetailerShop
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&shop, id).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *RetailerGormRepository) GetRetailerByUserID(ctx context.Context, userID uint) (*models.RetailerShop, error) {
	var shop models.RetailerShop
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *RetailerGormRepository) UpdateRetailerVerification(ctx context.Context, shop *models.RetailerShop) error {
	res := r.db.WithContext(ctx).
		Model(&models.RetailerShop{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"verification_status": shop.VerificationStatus,
			"is_verified":         shop.IsVerified,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *RetailerGormRepository) ListRetailers(ctx context.Context, p listing.Params) ([]models.RetailerShop, int64, error) {
	q := r.db.
		Model(&models.RetailerShop{}).
		Joins("JOIN users ON users.id = retailer_shops.user_id")

	return listing.Find[models.RetailerShop](ctx, q, retailerListSpec, p, func(db *gorm.DB) *gorm.DB {
		return db.Select("retailer_shops.*").Preload("User")
	})
}

func (r *RetailerGormRepository) CountRetailersByStatus(ctx context.Context) (map[string]int64, error) {
	return countBy(r.db.WithContext(ctx).Model(&models.RetailerShop{}), "verification_status")
}

// Compile-time check
var _ verification.RetailerRepository = (*RetailerGormRepository)(nil)
