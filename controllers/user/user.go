package userControllers

import (
	"errors"
	"net/http"

	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/pagination"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AddressRequest struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// GET /users/orders, the caller's order history with item and address detail.
func GetOrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		page, limit, offset := pagination.Params(c)

		var total int64
		if err := db.Model(&models.Order{}).
			Where("user_id = ?", userID).
			Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items.Product").
			Preload("ShippingAddress").
			Order("created_at DESC").
			Limit(limit).Offset(offset).
			Find(&orders).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       orders,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// PATCH /users/password
func UpdatePassword(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			NewPassword string `json:"newPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "New password is required"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}

		if err := db.Model(&models.User{}).
			Where("id = ?", middleware.UserID(c)).
			Update("password_hash", string(hash)).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}

// GET /users/address
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.UserAddress
		if err := db.Where("user_id = ?", middleware.UserID(c)).
			Find(&addresses).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// POST /users/address
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address data"})
			return
		}

		address := models.UserAddress{
			UserID:       middleware.UserID(c),
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			State:        req.State,
			PostalCode:   req.PostalCode,
			Country:      req.Country,
		}
		if err := db.Create(&address).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shipping address created successfully"})
	}
}

// PUT /users/address/:id, scoped to the caller so one user cannot edit
// another's address.
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address data"})
			return
		}

		result := db.Model(&models.UserAddress{}).
			Where("id = ? AND user_id = ?", c.Param("id"), middleware.UserID(c)).
			Updates(map[string]interface{}{
				"address_line1": req.AddressLine1,
				"address_line2": req.AddressLine2,
				"city":          req.City,
				"state":         req.State,
				"postal_code":   req.PostalCode,
				"country":       req.Country,
			})
		if result.Error != nil {
			status, message := sqlerr.HTTPStatus(result.Error)
			c.JSON(status, gin.H{"message": message})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shipping address updated successfully"})
	}
}

// DELETE /users/address/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), middleware.UserID(c)).
			Delete(&models.UserAddress{})
		if result.Error != nil {
			status, message := sqlerr.HTTPStatus(result.Error)
			c.JSON(status, gin.H{"message": message})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shipping address deleted successfully"})
	}
}

// GET /users/roles, admin only.
func GetRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.UserRole
		if err := db.Find(&roles).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, roles)
	}
}

// GET /users, admin listing with search over name and email plus an
// optional roleId filter.
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := pagination.Params(c)

		query := db.Model(&models.User{})
		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			query = query.Where(
				"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
				pattern, pattern, pattern,
			)
		}
		if roleID := c.Query("roleId"); roleID != "" {
			query = query.Where("role_id = ?", roleID)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var users []models.User
		if err := query.
			Preload("Role").
			Limit(limit).Offset(offset).
			Find(&users).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		data := make([]gin.H, 0, len(users))
		for _, user := range users {
			data = append(data, gin.H{
				"id":         user.ID,
				"first_name": user.FirstName,
				"last_name":  user.LastName,
				"email":      user.Email,
				"phone":      user.Phone,
				"image":      user.Image,
				"created_at": user.CreatedAt,
				"updated_at": user.UpdatedAt,
				"role":       user.Role.Name,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination.NewEnvelope(page, limit, total),
		})
	}
}

// GET /users/:id, public minimal profile.
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
		})
	}
}

// PUT /users, the caller updates their own profile.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
			return
		}

		userID := middleware.UserID(c)
		if err := db.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"first_name": req.FirstName,
				"last_name":  req.LastName,
				"email":      req.Email,
				"phone":      req.Phone,
			}).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
	}
}

// PATCH /users/:id, admin changes a user's role.
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RoleID uint `json:"roleId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "roleId is required"})
			return
		}

		result := db.Model(&models.User{}).
			Where("id = ?", c.Param("id")).
			Update("role_id", req.RoleID)
		if result.Error != nil {
			status, message := sqlerr.HTTPStatus(result.Error)
			c.JSON(status, gin.H{"message": message})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
	}
}

// DELETE /users/:id, admin only.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.User{})
		if result.Error != nil {
			status, message := sqlerr.HTTPStatus(result.Error)
			c.JSON(status, gin.H{"message": message})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
