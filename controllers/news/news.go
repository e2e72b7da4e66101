package newsControllers

import (
	"errors"
	"net/http"

	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/pagination"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NewsRequest struct {
	Title            string `json:"title" binding:"required"`
	Content          string `json:"content" binding:"required"`
	Preview          string `json:"preview"`
	ShortDescription string `json:"short_description"`
}

func toResponse(item models.News) gin.H {
	return gin.H{
		"id":                item.ID,
		"title":             item.Title,
		"content":           item.Content,
		"user_id":           item.UserID,
		"preview":           item.Preview,
		"short_description": item.ShortDescription,
		"created_at":        item.CreatedAt,
		"first_name":        item.User.FirstName,
		"last_name":         item.User.LastName,
	}
}

// GET /news
func GetNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := pagination.Params(c)

		var total int64
		if err := db.Model(&models.News{}).Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var news []models.News
		if err := db.
			Preload("User").
			Limit(limit).Offset(offset).
			Find(&news).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if len(news) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No news found"})
			return
		}

		data := make([]gin.H, 0, len(news))
		for _, item := range news {
			data = append(data, toResponse(item))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// GET /news/:id
func GetNewsByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.News
		if err := db.Preload("User").First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "No news found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, toResponse(item))
	}
}

// GET /news/author/:id
func GetNewsByAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var news []models.News
		if err := db.
			Preload("User").
			Where("user_id = ?", c.Param("id")).
			Find(&news).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if len(news) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No news found"})
			return
		}

		data := make([]gin.H, 0, len(news))
		for _, item := range news {
			data = append(data, toResponse(item))
		}
		c.JSON(http.StatusOK, data)
	}
}

// POST /news
func CreateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid news data"})
			return
		}

		item := models.News{
			Title:            req.Title,
			Content:          req.Content,
			UserID:           middleware.UserID(c),
			Preview:          req.Preview,
			ShortDescription: req.ShortDescription,
		}
		if err := db.Create(&item).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "News created successfully"})
	}
}

// PUT /news/:id
func UpdateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid news data"})
			return
		}

		updates := map[string]interface{}{
			"title":             req.Title,
			"content":           req.Content,
			"preview":           req.Preview,
			"short_description": req.ShortDescription,
		}
		if err := db.Model(&models.News{}).
			Where("id = ?", c.Param("id")).
			Updates(updates).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "News updated successfully"})
	}
}

// DELETE /news/:id
func DeleteNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).
			Delete(&models.News{}).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
	}
}
