package verification

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	domainverification "github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type SetRetailerStatus struct {
	repo  domainverification.RetailerRepository
	audit audit.Recorder
}

func NewSetRetailerStatus(
	repo domainverification.RetailerRepository,
	audit audit.Recorder,
) *SetRetailerStatus {
	return &SetRetailerStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute looks the shop up by the retailer's user id, not the shop id.
func (uc *SetRetailerStatus) Execute(
	ctx context.Context,
	actorID uint,
	userID uint,
	status domainverification.Status,
) (*models.RetailerShop, error) {

	if _, err := domainverification.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetRetailerByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "retailer_not_found")
	}

	previous := shop.VerificationStatus
	domainverification.ApplyToRetailer(shop, status)

	if err := uc.repo.UpdateRetailerVerification(ctx, shop); err != nil {
		return nil, notFound(err, "retailer_not_found")
	}

	action := audit.ActionRetailerRejected
	if status == domainverification.StatusApproved {
		action = audit.ActionRetailerApproved
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "retailer_shop",
		EntityID: &shop.ID,
		Metadata: map[string]any{"userId": userID, "from": previous, "to": string(status)},
	})

	return shop, nil
}
