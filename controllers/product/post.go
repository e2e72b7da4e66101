package productControllers

import (
	"net/http"
	"strconv"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// POST /products, multipart create with the image pushed to object storage.
func CreateProduct(db *gorm.DB, s3 *storage.S3Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		price, priceErr := strconv.ParseFloat(c.PostForm("price"), 64)
		categoryID, categoryErr := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
		stock, _ := strconv.Atoi(c.DefaultPostForm("stock", "0"))
		discount, _ := strconv.ParseFloat(c.DefaultPostForm("discount", "0"), 64)

		imageHeader, imageErr := c.FormFile("image")
		if name == "" || priceErr != nil || categoryErr != nil || imageErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Fields 'name', 'price', 'categoryId', and 'image' are required",
			})
			return
		}

		file, err := imageHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open image file"})
			return
		}
		defer file.Close()

		imageURL, err := s3.UploadProductImage(
			c.Request.Context(),
			imageHeader.Filename,
			imageHeader.Header.Get("Content-Type"),
			file,
		)
		if err != nil {
			logger.Error("Failed to upload image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
			return
		}

		product := models.Product{
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			Discount:    discount,
			CategoryID:  uint(categoryID),
			Image:       imageURL,
		}
		if err := db.Create(&product).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
