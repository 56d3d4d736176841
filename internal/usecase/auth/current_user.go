package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type CurrentUser struct {
	users account.Repository
}

func NewCurrentUser(users account.Repository) *CurrentUser {
	return &CurrentUser{users: users}
}

func (uc *CurrentUser) Execute(ctx context.Context, userID uint) (*models.User, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return u, err
}
