package routes

import (
	newsControllers "github.com/IskDev0/organick-backend/controllers/news"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupNewsRoutes registers all "/news/*" endpoints. Writes are limited
// to admins and authors.
func SetupNewsRoutes(r *gin.Engine, db *gorm.DB) {
	newsGroup := r.Group("/news")
	{
		newsGroup.GET("", newsControllers.GetNews(db))
		newsGroup.GET("/:id", newsControllers.GetNewsByID(db))
		newsGroup.GET("/author/:id", newsControllers.GetNewsByAuthor(db))

		editors := newsGroup.Group("")
		editors.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin, models.RoleAuthor))
		{
			editors.POST("", newsControllers.CreateNews(db))
			editors.PUT("/:id", newsControllers.UpdateNews(db))
			editors.DELETE("/:id", newsControllers.DeleteNews(db))
		}
	}
}
