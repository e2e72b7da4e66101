package productControllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.
			Preload("Category").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var oldPrice *float64
		if product.Discount > 0 {
			price := math.Round(product.Price*100) / 100
			oldPrice = &price
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            product.ID,
			"name":          product.Name,
			"oldPrice":      oldPrice,
			"price":         product.FinalPrice(),
			"discount":      product.Discount,
			"rating":        product.Rating,
			"image":         product.Image,
			"description":   product.Description,
			"stock":         product.Stock,
			"category_name": product.Category.Name,
			"categoryId":    product.CategoryID,
		})
	}
}
