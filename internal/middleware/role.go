package middleware

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the user has the required role.
// It must run after BearerAuth. action completes the denial message,
// e.g. "view scans" gives "Access denied. Only Dentist can view scans."
func RequireRole(requiredRole models.Role, action string) gin.HandlerFunc {
	denied := models.NewAPIError(models.KindAccessDenied,
		fmt.Sprintf("Access denied. Only %s can %s.", requiredRole, action))

	return func(c *gin.Context) {
		// Get user info from context (set by BearerAuth middleware)
		if _, exists := c.Get(ContextUserID); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.KindUnauthenticated, "User not logged in"))
			return
		}

		role, exists := c.Get(ContextUserRole)
		userRole, ok := role.(models.Role)
		if !exists || !ok || userRole != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, denied)
			return
		}

		c.Next()
	}
}
