package routes

import (
	analyticsControllers "github.com/IskDev0/organick-backend/controllers/analytics"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAnalyticsRoutes registers the admin dashboard endpoints.
func SetupAnalyticsRoutes(r *gin.Engine, db *gorm.DB) {
	analyticsGroup := r.Group("/analytics")
	analyticsGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		analyticsGroup.GET("/customers", analyticsControllers.GetCustomerAnalytics(db))
		analyticsGroup.GET("/products", analyticsControllers.GetProductAnalytics(db))
		analyticsGroup.GET("/orders", analyticsControllers.GetOrderAnalytics(db))
		analyticsGroup.GET("/orders/export-excel", analyticsControllers.ExportOrdersToExcel(db))
	}
}
