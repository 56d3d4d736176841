package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/delivery-marketplace/internal/auth"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// hashCost is lowered by tests.
var hashCost = bcrypt.DefaultCost

// TokenStore tracks refresh token ids so each one is usable once.
type TokenStore interface {
	Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (uint, error)
	Revoke(ctx context.Context, jti string) error
}

type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// issue signs a token pair for u and records the refresh id.
func issue(ctx context.Context, issuer *auth.Issuer, store TokenStore, u *models.User) (*Session, error) {
	access, err := issuer.Access(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	refresh, jti, err := issuer.Refresh(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	if err := store.Save(ctx, jti, u.ID, issuer.RefreshTTL()); err != nil {
		return nil, err
	}

	return &Session{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
