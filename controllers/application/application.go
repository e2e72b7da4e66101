package applicationControllers

import (
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ApplicationRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// POST /applications, contact form submissions.
func CreateApplication(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application data"})
			return
		}

		application := models.Application{
			FullName: req.FullName,
			Email:    req.Email,
			Subject:  req.Subject,
			Company:  req.Company,
			Message:  req.Message,
		}
		if err := db.Create(&application).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
	}
}
