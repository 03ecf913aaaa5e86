package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilystsov/vocabulary-builder/internal/auth"
)

// AccessTokenCookie carries the "Bearer <jwt>" value between requests.
const AccessTokenCookie = "access_token"

// IdentityKey is the gin context key the resolved identity is stored under.
const IdentityKey = "identity"

// AuthMiddleware requires a valid access token cookie. A missing cookie
// is an auth failure, not a crash.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(AccessTokenCookie)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		identity, err := authService.CurrentUser(c.Request.Context(), cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CurrentIdentity pulls the identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
