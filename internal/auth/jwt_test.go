package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer() *Issuer {
	return NewIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAccess_RoundTrip(t *testing.T) {
	t.Parallel()
	i := newIssuer()

	tok, err := i.Access(42, "admin")
	require.NoError(t, err)

	claims, err := i.ParseAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestRefresh_RoundTripCarriesJTI(t *testing.T) {
	t.Parallel()
	i := newIssuer()

	tok, jti, err := i.Refresh(7, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := i.ParseRefresh(tok)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestParse_RejectsSwappedTokenKinds(t *testing.T) {
	t.Parallel()
	i := NewIssuer("same", "same", time.Minute, time.Hour)

	access, err := i.Access(1, "customer")
	require.NoError(t, err)
	refresh, _, err := i.Refresh(1, "customer")
	require.NoError(t, err)

	_, err = i.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = i.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()
	i := newIssuer()
	i.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := i.Access(1, "customer")
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.ParseAccess(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecretAndGarbage(t *testing.T) {
	t.Parallel()

	tok, err := newIssuer().Access(1, "customer")
	require.NoError(t, err)

	other := NewIssuer("other", "other", time.Minute, time.Hour)
	_, err = other.ParseAccess(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = other.ParseAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
