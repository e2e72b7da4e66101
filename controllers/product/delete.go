package productControllers

import (
	"errors"
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DELETE /products/:id
func DeleteProduct(db *gorm.DB, s3 *storage.S3Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if product.Image != "" {
			if err := s3.DeleteProductImage(c.Request.Context(), product.Image); err != nil {
				logger.Error("Failed to delete image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting image"})
				return
			}
		}

		if err := db.Delete(&product).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
