package routes

import (
	userControllers "github.com/IskDev0/organick-backend/controllers/user"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	userGroup := r.Group("/users")
	{
		userGroup.GET("/:id", userControllers.GetUserByID(db))

		authed := userGroup.Group("")
		authed.Use(middleware.ValidateToken)
		{
			authed.GET("/orders", userControllers.GetOrderHistory(db))
			authed.PATCH("/password", userControllers.UpdatePassword(db, logger))
			authed.PUT("", userControllers.UpdateProfile(db))

			authed.GET("/address", userControllers.GetAddresses(db))
			authed.POST("/address", userControllers.CreateAddress(db))
			authed.PUT("/address/:id", userControllers.UpdateAddress(db))
			authed.DELETE("/address/:id", userControllers.DeleteAddress(db))
		}

		admin := userGroup.Group("")
		admin.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("", userControllers.GetUsers(db))
			admin.GET("/roles", userControllers.GetRoles(db))
			admin.PATCH("/:id", userControllers.UpdateUserRole(db))
			admin.DELETE("/:id", userControllers.DeleteUser(db))
		}
	}
}
