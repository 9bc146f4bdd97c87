package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Resolver resolves a bearer token string to a caller identity. The
// authentication service implements it; the middleware only needs this one
// method, which keeps the packages decoupled.
type Resolver interface {
	Resolve(token string) (*Identity, error)
}

// Middleware guards mutating routes: it resolves the bearer token and injects
// the caller identity into the request context before any handler runs.
type Middleware struct {
	resolver Resolver
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(resolver Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// RequireAuth validates bearer tokens and sets the caller identity context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		identity, err := m.resolver.Resolve(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("admin_id", identity.AdminID)
		c.Set("organization_name", identity.OrganizationName)
		c.Set("partition_key", identity.PartitionKey)

		c.Next()
	}
}

// GetAdminID is a helper function to extract the caller's admin ID from context
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

// GetOrganizationName is a helper function to extract the caller's organization from context
func GetOrganizationName(c *gin.Context) (string, bool) {
	name, exists := c.Get("organization_name")
	if !exists {
		return "", false
	}

	nameStr, ok := name.(string)
	return nameStr, ok
}

// GetPartitionKey is a helper function to extract the caller's partition key from context
func GetPartitionKey(c *gin.Context) (string, bool) {
	key, exists := c.Get("partition_key")
	if !exists {
		return "", false
	}

	keyStr, ok := key.(string)
	return keyStr, ok
}
