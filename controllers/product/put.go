package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PUT /products/:id, updates the row and swaps the stored image when a new
// file is attached.
func UpdateProduct(db *gorm.DB, s3 *storage.S3Client, logger *zap.Logger) gin.HandlerFunc {
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

		name := c.PostForm("name")
		price, priceErr := strconv.ParseFloat(c.PostForm("price"), 64)
		categoryID, categoryErr := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
		if name == "" || priceErr != nil || categoryErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, and categoryId are required"})
			return
		}

		stock, _ := strconv.Atoi(c.DefaultPostForm("stock", "0"))
		discount, _ := strconv.ParseFloat(c.DefaultPostForm("discount", "0"), 64)

		imageURL := product.Image
		if imageHeader, err := c.FormFile("image"); err == nil {
			if imageURL != "" {
				if err := s3.DeleteProductImage(c.Request.Context(), imageURL); err != nil {
					logger.Error("Failed to delete old image", zap.Error(err))
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting old image"})
					return
				}
			}

			file, err := imageHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open image file"})
				return
			}
			defer file.Close()

			imageURL, err = s3.UploadProductImage(
				c.Request.Context(),
				imageHeader.Filename,
				imageHeader.Header.Get("Content-Type"),
				file,
			)
			if err != nil {
				logger.Error("Failed to upload new image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading new image"})
				return
			}
		}

		updates := map[string]interface{}{
			"name":        name,
			"description": c.PostForm("description"),
			"price":       price,
			"stock":       stock,
			"discount":    discount,
			"category_id": uint(categoryID),
			"image":       imageURL,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
