package verification

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type DeliveryBoyRepository interface {
	GetDeliveryBoyByID(ctx context.Context, id uint) (*models.DeliveryBoy, error)

	// UpdateDeliveryBoyVerification persists VerificationStatus and
	// IsVerified only.
	UpdateDeliveryBoyVerification(ctx context.Context, d *models.DeliveryBoy) error

	ListPendingDeliveryBoys(ctx context.Context) ([]models.DeliveryBoy, error)
	ListDeliveryBoys(ctx context.Context, p listing.Params) ([]models.DeliveryBoy, int64, error)
	CountDeliveryBoysByStatus(ctx context.Context) (map[string]int64, error)
}

type RetailerRepository interface {
	GetRetailerByID(ctx context.Context, id uint) (*models.RetailerShop, error)
	GetRetailerByUserID(ctx context.Context, userID uint) (*models.RetailerShop, error)

	// UpdateRetailerVerification persists VerificationStatus and IsVerified
	// only.
	UpdateRetailerVerification(ctx context.Context, r *models.RetailerShop) error

	ListRetailers(ctx context.Context, p listing.Params) ([]models.RetailerShop, int64, error)
	CountRetailersByStatus(ctx context.Context) (map[string]int64, error)
}
