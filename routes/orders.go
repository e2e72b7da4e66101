package routes

import (
	orderControllers "github.com/IskDev0/organick-backend/controllers/order"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers all "/orders/*" endpoints. Requires JWT
// middleware; status updates and deletion are admin only.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("", orderControllers.PlaceOrderHandler(db, logger))
		orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orderGroup.PATCH("/:id/cancel", orderControllers.CancelOrderHandler(db))

		adminOnly := orderGroup.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			adminOnly.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
		}
	}

	// live feed of newly placed orders for the admin dashboard
	r.GET("/ws/orders",
		middleware.ValidateToken,
		middleware.RequireRole(models.RoleAdmin),
		orderControllers.OrderWebSocketHandler)
}
