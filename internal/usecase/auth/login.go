package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/delivery-marketplace/internal/auth"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/validators"
)

type LoginUser struct {
	users  account.Repository
	issuer *auth.Issuer
	tokens TokenStore
}

func NewLoginUser(users account.Repository, issuer *auth.Issuer, tokens TokenStore) *LoginUser {
	return &LoginUser{users: users, issuer: issuer, tokens: tokens}
}

// Execute checks, in order: the email exists, the role may use this login,
// the password matches, the account is not blocked.
func (uc *LoginUser) Execute(
	ctx context.Context,
	email string,
	password string,
	allowed []account.Role,
) (*Session, error) {

	u, err := uc.users.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if !account.Role(u.Role).In(allowed) {
		return nil, httperr.ErrBusiness("access_denied")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if u.IsBlocked {
		return nil, httperr.ErrBusiness("account_blocked")
	}

	return issue(ctx, uc.issuer, uc.tokens, u)
}
