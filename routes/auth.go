package routes

import (
	authControllers "github.com/IskDev0/organick-backend/controllers/auth"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.RegisterHandler(db, logger))
		authGroup.POST("/login", authControllers.LoginHandler(db, logger))
		authGroup.POST("/refresh", authControllers.RefreshHandler(logger))
		authGroup.POST("/logout", authControllers.LogoutHandler())

		authGroup.GET("/me", middleware.ValidateToken, authControllers.CurrentUserHandler(db))
	}
}
