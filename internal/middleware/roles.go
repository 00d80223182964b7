package middleware

import (
	"net/http"
	"strings"

	"github.com/ShubhamJagtap-29/gamersden/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRoles allows the request through only when the authenticated user's
// derived role set contains at least one of the required tags. The database,
// not the token, is the source of truth for roles.
func RequireRoles(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var u user.User
		if err := db.First(&u, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User roles not found"})
			return
		}

		hasRequiredRole := false
		for _, userRole := range u.Roles {
			for _, requiredRole := range requiredRoles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRequiredRole = true
					break
				}
			}
			if hasRequiredRole {
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "You don't have permission to access this resource",
				"required": requiredRoles,
			})
			return
		}

		c.Set("user_roles", []string(u.Roles))
		c.Next()
	}
}
