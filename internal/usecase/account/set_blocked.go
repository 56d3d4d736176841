package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	domainaccount "github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// ===============================
// Block / unblock by user id
// ===============================

type SetUserBlocked struct {
	users domainaccount.Repository
	audit audit.Recorder
}

func NewSetUserBlocked(users domainaccount.Repository, audit audit.Recorder) *SetUserBlocked {
	return &SetUserBlocked{users: users, audit: audit}
}

func (uc *SetUserBlocked) Execute(ctx context.Context, actorID, userID uint, blocked bool) (*models.User, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user_not_found")
	}

	if blocked && domainaccount.Role(u.Role) == domainaccount.RoleAdmin {
		return nil, httperr.ErrBusiness("cannot_block_admin")
	}

	if err := uc.users.SetUserBlocked(ctx, u.ID, blocked); err != nil {
		return nil, notFound(err, "user_not_found")
	}
	u.IsBlocked = blocked

	action := audit.ActionUserUnblocked
	if blocked {
		action = audit.ActionUserBlocked
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"role": u.Role},
	})

	return u, nil
}

// ===============================
// Block / unblock by profile id
// ===============================

type SetDeliveryBoyBlocked struct {
	boys  verification.DeliveryBoyRepository
	users *SetUserBlocked
}

func NewSetDeliveryBoyBlocked(boys verification.DeliveryBoyRepository, users *SetUserBlocked) *SetDeliveryBoyBlocked {
	return &SetDeliveryBoyBlocked{boys: boys, users: users}
}

// Execute resolves the delivery boy profile to its user and blocks that user.
func (uc *SetDeliveryBoyBlocked) Execute(ctx context.Context, actorID, profileID uint, blocked bool) (*models.User, error) {
	d, err := uc.boys.GetDeliveryBoyByID(ctx, profileID)
	if err != nil {
		return nil, notFound(err, "delivery_boy_not_found")
	}
	return uc.users.Execute(ctx, actorID, d.UserID, blocked)
}

type SetRetailerBlocked struct {
	shops verification.RetailerRepository
	users *SetUserBlocked
}

func NewSetRetailerBlocked(shops verification.RetailerRepository, users *SetUserBlocked) *SetRetailerBlocked {
	return &SetRetailerBlocked{shops: shops, users: users}
}

func (uc *SetRetailerBlocked) Execute(ctx context.Context, actorID, profileID uint, blocked bool) (*models.User, error) {
	shop, err := uc.shops.GetRetailerByID(ctx, profileID)
	if err != nil {
		return nil, notFound(err, "retailer_not_found")
	}
	return uc.users.Execute(ctx, actorID, shop.UserID, blocked)
}

func notFound(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
