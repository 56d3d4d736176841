package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user identity. Refresh tokens also carry a unique ID
// (RegisteredClaims.ID) that the token store tracks for rotation.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

func (i *Issuer) Access(userID uint, role string) (string, error) {
	return i.sign(userID, role, TypeAccess, "", i.accessTTL, i.accessSecret)
}

// Refresh returns the signed refresh token and its jti.
func (i *Issuer) Refresh(userID uint, role string) (string, string, error) {
	jti := uuid.NewString()
	tok, err := i.sign(userID, role, TypeRefresh, jti, i.refreshTTL, i.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return tok, jti, nil
}

func (i *Issuer) ParseAccess(token string) (*Claims, error) {
	return i.parse(token, TypeAccess, i.accessSecret)
}

func (i *Issuer) ParseRefresh(token string) (*Claims, error) {
	claims, err := i.parse(token, TypeRefresh, i.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (i *Issuer) sign(userID uint, role, typ, jti string, ttl time.Duration, secret []byte) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

func (i *Issuer) parse(token, typ string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != typ || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
