package routes

import (
	productControllers "github.com/IskDev0/organick-backend/controllers/product"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public catalog plus admin-only
// management endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, s3 *storage.S3Client, logger *zap.Logger) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productControllers.GetProducts(db))
		productGroup.GET("/search", productControllers.SearchProducts(db))
		productGroup.GET("/categories", productControllers.GetAllCategories(db))
		productGroup.GET("/:id", productControllers.GetProductByID(db))
	}

	productAdmin := r.Group("/products")
	productAdmin.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		productAdmin.POST("", productControllers.CreateProduct(db, s3, logger))
		productAdmin.PUT("/:id", productControllers.UpdateProduct(db, s3, logger))
		productAdmin.DELETE("/:id", productControllers.DeleteProduct(db, s3, logger))
		productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
	}
}
