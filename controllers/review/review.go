package reviewControllers

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

type CreateReviewRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

type reviewResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	UserID    uint   `json:"user_id"`
	CreatedAt string `json:"created_at"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Product   gin.H  `json:"product,omitempty"`
}

func toResponse(review models.Review, withProduct bool) reviewResponse {
	resp := reviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserID:    review.UserID,
		CreatedAt: review.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		FirstName: review.User.FirstName,
		LastName:  review.User.LastName,
	}
	if withProduct {
		resp.Product = gin.H{
			"id":    review.Product.ID,
			"name":  review.Product.Name,
			"image": review.Product.Image,
			"price": review.Product.Price,
		}
	}
	return resp
}

// recalculateRating refreshes the product's cached average rating.
func recalculateRating(tx *gorm.DB, productID uint) error {
	var average float64
	if err := tx.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return err
	}
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("rating", average).Error
}

// GET /reviews, the caller's own reviews.
func GetUserReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		page, limit, offset := pagination.Params(c)

		var total int64
		if err := db.Model(&models.Review{}).
			Where("user_id = ?", userID).
			Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var reviews []models.Review
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Preload("User").
			Limit(limit).Offset(offset).
			Find(&reviews).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		data := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			data = append(data, toResponse(review, true))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// GET /reviews/:productId
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		page, limit, offset := pagination.Params(c)

		var total int64
		if err := db.Model(&models.Review{}).
			Where("product_id = ?", productID).
			Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var reviews []models.Review
		if err := db.
			Where("product_id = ?", productID).
			Preload("User").
			Limit(limit).Offset(offset).
			Find(&reviews).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		data := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			data = append(data, toResponse(review, false))
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// POST /reviews, create and refresh the product rating in one transaction.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review data"})
			return
		}

		userID := middleware.UserID(c)

		err := db.Transaction(func(tx *gorm.DB) error {
			review := models.Review{
				ProductID: req.ProductID,
				UserID:    userID,
				Rating:    req.Rating,
				Comment:   req.Comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			return recalculateRating(tx, req.ProductID)
		})
		if err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review created successfully"})
	}
}

// DELETE /reviews/:id, owners only.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if review.UserID != userID {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not allowed to delete this review"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&review).Error; err != nil {
				return err
			}
			return recalculateRating(tx, review.ProductID)
		})
		if err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
