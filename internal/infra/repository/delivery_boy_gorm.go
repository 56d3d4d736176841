package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

var deliveryBoyListSpec = listing.Spec{
	Sorts: map[string]string{
		"name":                 "users.name",
		"email":                "users.email",
		"city":                 "delivery_boys.city",
		"verificationStatus":   "delivery_boys.verification_status",
		"totalDeliveredOrders": "delivery_boys.total_delivered_orders",
		"createdAt":            "delivery_boys.created_at",
	},
	DefaultSort: "delivery_boys.created_at",
	Tiebreak:    "delivery_boys.id",
	Filters: map[string]string{
		"verificationStatus": "delivery_boys.verification_status",
		"isVerified":         "delivery_boys.is_verified",
		"currentlyAvailable": "delivery_boys.currently_available",
		"vehicleType":        "delivery_boys.vehicle_type",
		"city":               "delivery_boys.city",
		"state":              "delivery_boys.state",
		"isBlocked":          "users.is_blocked",
	},
	SearchColumns: []string{
		"users.name",
		"users.email",
		"delivery_boys.phone",
		"CAST(delivery_boys.id AS TEXT)",
	},
}

type DeliveryBoyGormRepository struct {
	db *gorm.DB
}

func NewDeliveryBoyGormRepository(db *gorm.DB) *DeliveryBoyGormRepository {
	return &DeliveryBoyGormRepository{db: db}
}

func (r *DeliveryBoyGormRepository) GetDeliveryBoyByID(ctx context.Context, id uint) (*models.DeliveryBoy, error) {
	var d models.DeliveryBoy
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DeliveryBoyGormRepository) UpdateDeliveryBoyVerification(ctx context.Context, d *models.DeliveryBoy) error {
	res := r.db.WithContext(ctx).
		Model(&models.DeliveryBoy{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"verification_status": d.VerificationStatus,
			"is_verified":         d.IsVerified,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *DeliveryBoyGormRepository) ListPendingDeliveryBoys(ctx context.Context) ([]models.DeliveryBoy, error) {
	var out []models.DeliveryBoy
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", string(verification.StatusPending)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DeliveryBoyGormRepository) ListDeliveryBoys(ctx context.Context, p listing.Params) ([]models.DeliveryBoy, int64, error) {
	q := r.db.
		Model(&models.DeliveryBoy{}).
		Joins("JOIN users ON users.id = delivery_boys.user_id")

	return listing.Find[models.DeliveryBoy](ctx, q, deliveryBoyListSpec, p, func(db *gorm.DB) *gorm.DB {
		return db.Select("delivery_boys.*").Preload("User")
	})
}

func (r *DeliveryBoyGormRepository) CountDeliveryBoysByStatus(ctx context.Context) (map[string]int64, error) {
	return countBy(r.db.WithContext(ctx).Model(&models.DeliveryBoy{}), "verification_status")
}

// Compile-time check
var _ verification.DeliveryBoyRepository = (*DeliveryBoyGormRepository)(nil)
