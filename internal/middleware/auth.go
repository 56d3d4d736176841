package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/delivery-marketplace/internal/auth"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"

	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// AuthMiddleware reads the access token from the accessToken cookie, or from
// an Authorization: Bearer header when the cookie is absent.
func AuthMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := accessToken(c)
		if tokenString == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_token", "Not authenticated")
			return
		}

		claims, err := issuer.ParseAccess(tokenString)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", httperr.DefaultMessage("invalid_token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if v, err := c.Cookie(AccessCookie); err == nil && v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireRole lets the request through only for the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_token", "Not authenticated")
			return
		}
		if !allowed[role] {
			httperr.Abort(c, http.StatusForbidden, "access_denied", httperr.DefaultMessage("access_denied"))
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
