package verification

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	domainverification "github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type SetDeliveryBoyStatus struct {
	repo  domainverification.DeliveryBoyRepository
	audit audit.Recorder
}

func NewSetDeliveryBoyStatus(
	repo domainverification.DeliveryBoyRepository,
	audit audit.Recorder,
) *SetDeliveryBoyStatus {
	return &SetDeliveryBoyStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves the delivery boy profile id to status. Any status can be
// applied from any other, including the current one.
func (uc *SetDeliveryBoyStatus) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	status domainverification.Status,
) (*models.DeliveryBoy, error) {

	if _, err := domainverification.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	d, err := uc.repo.GetDeliveryBoyByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "delivery_boy_not_found")
	}

	previous := d.VerificationStatus
	domainverification.ApplyToDeliveryBoy(d, status)

	if err := uc.repo.UpdateDeliveryBoyVerification(ctx, d); err != nil {
		return nil, notFound(err, "delivery_boy_not_found")
	}

	action := audit.ActionDeliveryBoyRejected
	if status == domainverification.StatusApproved {
		action = audit.ActionDeliveryBoyApproved
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "delivery_boy",
		EntityID: &d.ID,
		Metadata: map[string]string{"from": previous, "to": string(status)},
	})

	return d, nil
}

// notFound turns a missing record into the given business error.
func notFound(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
