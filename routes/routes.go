package routes

import (
	subscriptionControllers "github.com/IskDev0/organick-backend/controllers/subscription"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, s3 *storage.S3Client, mailer subscriptionControllers.Mailer, logger *zap.Logger) {
	SetupAuthRoutes(r, db, logger)

	SetupProductRoutes(r, db, s3, logger)

	SetupOrderRoutes(r, db, logger)

	SetupReviewRoutes(r, db)

	SetupNewsRoutes(r, db)

	SetupUserRoutes(r, db, logger)

	SetupMiscRoutes(r, db, mailer, logger)

	SetupAnalyticsRoutes(r, db)
}
