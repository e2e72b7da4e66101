package routes

import (
	reviewControllers "github.com/IskDev0/organick-backend/controllers/review"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupReviewRoutes registers all "/reviews/*" endpoints.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviewGroup := r.Group("/reviews")
	{
		reviewGroup.GET("/:productId", reviewControllers.GetProductReviews(db))

		authed := reviewGroup.Group("")
		authed.Use(middleware.ValidateToken)
		{
			authed.GET("", reviewControllers.GetUserReviews(db))
			authed.POST("", reviewControllers.CreateReview(db))
			authed.DELETE("/:id", reviewControllers.DeleteReview(db))
		}
	}
}
