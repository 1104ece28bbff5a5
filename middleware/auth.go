package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthRequired rejects requests without a valid bearer token and stores the
// decoded identity in the gin context for the handler.
func AuthRequired(c *gin.Context) {
	identity, err := VerifyToken(c.GetHeader("Authorization"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(identityKey, identity)
	c.Next()
}

// AdminRequired additionally requires the admin role. Must run after
// AuthRequired.
func AdminRequired(c *gin.Context) {
	if !IdentityFromContext(c).IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	c.Next()
}

// IdentityFromContext returns the identity stored by AuthRequired, or nil.
func IdentityFromContext(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	return identity
}
