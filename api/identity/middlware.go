package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store token claims in the Gin context.
	ContextClaims = "claims"

	// ScopeMazesWrite grants storing and reading saved mazes.
	ScopeMazesWrite = "mazes:write"
)

// Authoriz rejects requests without a valid bearer token carrying scope.
// An empty scope accepts any valid token.
func Authoriz(ts i.Tokenizer, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if scope != "" && !hasScope(claims, scope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// hasScope reports whether the space separated "scope" claim contains scope.
func hasScope(claims map[string]interface{}, scope string) bool {
	raw, ok := claims["scope"].(string)
	if !ok {
		return false
	}
	for _, s := range strings.Fields(raw) {
		if s == scope {
			return true
		}
	}
	return false
}
