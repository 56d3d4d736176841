package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/delivery-marketplace/internal/auth"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
)

type RefreshSession struct {
	users  account.Repository
	issuer *auth.Issuer
	tokens TokenStore
}

func NewRefreshSession(users account.Repository, issuer *auth.Issuer, tokens TokenStore) *RefreshSession {
	return &RefreshSession{users: users, issuer: issuer, tokens: tokens}
}

// Execute rotates the refresh token: the presented one is consumed and a
// new pair is issued.
func (uc *RefreshSession) Execute(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := uc.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}

	owner, err := uc.tokens.Consume(ctx, claims.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}
	if err != nil {
		return nil, err
	}
	if owner != claims.UserID {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}

	u, err := uc.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_refresh_token")
	}
	if err != nil {
		return nil, err
	}

	if u.IsBlocked {
		return nil, httperr.ErrBusiness("account_blocked")
	}

	return issue(ctx, uc.issuer, uc.tokens, u)
}

type Logout struct {
	issuer *auth.Issuer
	tokens TokenStore
}

func NewLogout(issuer *auth.Issuer, tokens TokenStore) *Logout {
	return &Logout{issuer: issuer, tokens: tokens}
}

// Execute revokes the refresh token if it is still valid. Garbage or expired
// tokens are not an error: the session is over either way.
func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := uc.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil
	}
	return uc.tokens.Revoke(ctx, claims.ID)
}
