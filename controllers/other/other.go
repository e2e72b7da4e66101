package otherControllers

import (
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /team
func GetTeam(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var team []models.TeamMember
		if err := db.Find(&team).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, team)
	}
}

// GET /testimonials
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Find(&testimonials).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, testimonials)
	}
}
