package productControllers

import (
	"math"
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/pagination"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductCard is the catalog listing shape: discounted price plus the
// original price when a discount applies.
type ProductCard struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"oldPrice,omitempty"`
	Discount float64  `json:"discount"`
	Rating   float64  `json:"rating"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
}

func toCard(p models.Product) ProductCard {
	card := ProductCard{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.FinalPrice(),
		Discount: p.Discount,
		Image:    p.Image,
		Category: p.Category.Name,
	}
	if p.Discount > 0 {
		oldPrice := math.Round(p.Price*100) / 100
		card.OldPrice = &oldPrice
	}

	if len(p.Reviews) > 0 {
		sum := 0
		for _, review := range p.Reviews {
			sum += review.Rating
		}
		card.Rating = math.Round(float64(sum)/float64(len(p.Reviews))*10) / 10
	}
	return card
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := pagination.Params(c)

		var total int64
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var products []models.Product
		if err := db.
			Preload("Category").
			Preload("Reviews").
			Limit(limit).Offset(offset).
			Find(&products).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		cards := make([]ProductCard, 0, len(products))
		for _, p := range products {
			cards = append(cards, toCard(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       cards,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// GET /products/search
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := pagination.Params(c)

		query := db.Model(&models.Product{})
		if name := c.Query("name"); name != "" {
			query = query.Where("name ILIKE ?", "%"+name+"%")
		}
		if categoryID := c.Query("categoryId"); categoryID != "" && categoryID != "0" {
			query = query.Where("category_id = ?", categoryID)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var products []models.Product
		if err := query.
			Preload("Category").
			Preload("Reviews").
			Limit(limit).Offset(offset).
			Find(&products).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found"})
			return
		}

		cards := make([]ProductCard, 0, len(products))
		for _, p := range products {
			cards = append(cards, toCard(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       cards,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// GET /products/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
