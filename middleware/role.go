package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the given role ids. Must run after
// ValidateToken.
func RequireRole(roleIDs ...uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRoleID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		roleID, _ := value.(uint)
		for _, allowed := range roleIDs {
			if roleID == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not allowed to access this resource"})
		c.Abort()
	}
}
