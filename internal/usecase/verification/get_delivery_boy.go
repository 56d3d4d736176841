package verification

import (
	"context"

	domainverification "github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type GetDeliveryBoy struct {
	repo domainverification.DeliveryBoyRepository
}

func NewGetDeliveryBoy(repo domainverification.DeliveryBoyRepository) *GetDeliveryBoy {
	return &GetDeliveryBoy{repo: repo}
}

func (uc *GetDeliveryBoy) Execute(ctx context.Context, id uint) (*models.DeliveryBoy, error) {
	d, err := uc.repo.GetDeliveryBoyByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "delivery_boy_not_found")
	}
	return d, nil
}

type ListPendingDeliveryBoys struct {
	repo domainverification.DeliveryBoyRepository
}

func NewListPendingDeliveryBoys(repo domainverification.DeliveryBoyRepository) *ListPendingDeliveryBoys {
	return &ListPendingDeliveryBoys{repo: repo}
}

func (uc *ListPendingDeliveryBoys) Execute(ctx context.Context) ([]models.DeliveryBoy, error) {
	out, err := uc.repo.ListPendingDeliveryBoys(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.DeliveryBoy{}
	}
	return out, nil
}
