package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKeyClaims is the gin context key the verified claims live under.
const contextKeyClaims = "auth.claims"

// Middleware returns a gin middleware enforcing bearer auth against the
// token service. A nil service disables auth entirely, for local runs
// without a configured secret.
func Middleware(svc *TokenService) gin.HandlerFunc {
	if svc == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing bearer token",
			})
			return
		}

		claims, err := svc.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid token",
			})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims set by Middleware, nil when
// the request ran unauthenticated.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
