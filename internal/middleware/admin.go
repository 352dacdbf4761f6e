package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// RoleLookup resolves a user's role for authorization checks.
type RoleLookup interface {
	GetUserRole(ctx context.Context, userID string) (domain.UserRole, error)
}

// AdminRequired ensures the authenticated user holds the admin role.
// It must run after AuthMiddleware.
func AdminRequired(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Admin check invoked without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		role, err := roles.GetUserRole(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to resolve user role", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		if role != domain.RoleAdmin {
			logger.Warn("Non-admin user attempted admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
