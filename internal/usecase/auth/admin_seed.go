package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/validators"
)

// EnsureAdmin creates the admin account when no user owns the email yet.
// Admins cannot sign up through the API; this is the only way in.
type EnsureAdmin struct {
	users account.Repository
}

func NewEnsureAdmin(users account.Repository) *EnsureAdmin {
	return &EnsureAdmin{users: users}
}

// Execute reports whether an account was created.
func (uc *EnsureAdmin) Execute(ctx context.Context, name, email, password string) (bool, error) {
	email = validators.NormalizeEmail(email)

	existing, err := uc.users.GetUserByEmail(ctx, email)
	if err == nil {
		if account.Role(existing.Role) != account.RoleAdmin {
			return false, httperr.ErrBusinessMsg("invalid_role", "Seed email belongs to a non-admin account")
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}

	err = uc.users.CreateUser(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(account.RoleAdmin),
		IsVerified:   true,
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return false, nil
	}
	return err == nil, err
}
