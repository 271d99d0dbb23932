package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const addressKey = "authAddress"

func bearer(c *gin.Context) (string, bool) {
	authz := c.GetHeader("Authorization")
	if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return "", false
	}
	return strings.TrimSpace(authz[7:]), true
}

// JWTMiddleware rejects requests without a valid bearer token.
func JWTMiddleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		claims, err := svc.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(addressKey, claims.Address)
		c.Next()
	}
}

// OptionalJWT records the caller when a valid token is present and lets
// anonymous requests through. A malformed token is still rejected.
func OptionalJWT(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := svc.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(addressKey, claims.Address)
		c.Next()
	}
}

// AddressFrom returns the authenticated address, or "" for anonymous callers.
func AddressFrom(c *gin.Context) string {
	return c.GetString(addressKey)
}
