package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"delivery_boy_not_found", http.StatusNotFound},
		{"address_not_found", http.StatusNotFound},
		{"invalid_credentials", http.StatusUnauthorized},
		{"invalid_refresh_token", http.StatusUnauthorized},
		{"access_denied", http.StatusForbidden},
		{"account_blocked", http.StatusForbidden},
		{"email_already_registered", http.StatusConflict},
		{"cannot_block_admin", http.StatusBadRequest},
		{"anything_else", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.code))
		})
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("approve: %w", ErrBusiness("retailer_not_found"))

	assert.True(t, IsBusiness(err, "retailer_not_found"))
	assert.False(t, IsBusiness(err, "user_not_found"))
	assert.False(t, IsBusiness(errors.New("boom"), "retailer_not_found"))
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, "Access denied", ErrBusiness("access_denied").Error())
	assert.Equal(t, "some thing", DefaultMessage("some_thing"))
	assert.Equal(t, "custom", ErrBusinessMsg("x", "custom").Error())
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("business", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		unexpected := FromError(c, ErrBusiness("access_denied"))

		assert.False(t, unexpected)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "access_denied", body.Code)
		assert.Equal(t, "Access denied", body.Message)
	})

	t.Run("unexpected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		unexpected := FromError(c, errors.New("db down"))

		assert.True(t, unexpected)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}
