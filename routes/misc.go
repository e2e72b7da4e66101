package routes

import (
	applicationControllers "github.com/IskDev0/organick-backend/controllers/application"
	otherControllers "github.com/IskDev0/organick-backend/controllers/other"
	subscriptionControllers "github.com/IskDev0/organick-backend/controllers/subscription"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiscRoutes registers the newsletter, contact form, and static
// content endpoints.
func SetupMiscRoutes(r *gin.Engine, db *gorm.DB, mailer subscriptionControllers.Mailer, logger *zap.Logger) {
	subscriptionGroup := r.Group("/subscription")
	{
		subscriptionGroup.POST("", subscriptionControllers.Subscribe(db))
		subscriptionGroup.POST("/unsubscribe", subscriptionControllers.RequestUnsubscribe(db, mailer, logger))
		subscriptionGroup.GET("/confirm-unsubscribe", subscriptionControllers.ConfirmUnsubscribe(db))
	}

	r.POST("/applications", applicationControllers.CreateApplication(db))

	r.GET("/team", otherControllers.GetTeam(db))
	r.GET("/testimonials", otherControllers.GetTestimonials(db))
}
