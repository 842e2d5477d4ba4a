package middleware

import (
	"net/http"
	"strings"

	"ambition/internal/models"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextOwnerID   = "owner_id"
	ContextOwnerType = "owner_type"
)

// AuthRequired validates the bearer token and puts the owner id and type on
// the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextOwnerID, claims.OwnerID)
		c.Set(ContextOwnerType, claims.OwnerType)

		c.Next()
	}
}

// DriverRequired allows only driver tokens past.
func DriverRequired() gin.HandlerFunc {
	return requireOwnerType(models.OwnerTypeDriver)
}

// UserRequired allows only user tokens past.
func UserRequired() gin.HandlerFunc {
	return requireOwnerType(models.OwnerTypeUser)
}

func requireOwnerType(want models.OwnerType) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerType, exists := c.Get(ContextOwnerType)
		if !exists || ownerType != string(want) {
			c.JSON(http.StatusForbidden, gin.H{"error": string(want) + " access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
