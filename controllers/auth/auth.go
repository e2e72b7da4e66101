package authControllers

import (
	"errors"
	"net/http"

	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func publicProfile(user models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role.Name,
	}
}

// POST /auth/register
func RegisterHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		user := models.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: string(hash),
			RoleID:       models.RoleCustomer,
		}
		if err := db.Create(&user).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}
		if err := db.Preload("Role").First(&user, user.ID).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		accessToken, refreshToken, err := GenerateTokens(user.ID, user.RoleID)
		if err != nil {
			logger.Error("Failed to sign tokens", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		setAuthCookies(c, accessToken, refreshToken)

		logger.Info("User registered", zap.String("email", user.Email))
		c.JSON(http.StatusOK, publicProfile(user))
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or password not provided"})
			return
		}

		var user models.User
		if err := db.Preload("Role").First(&user, "email = ?", req.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid password"})
			return
		}

		accessToken, refreshToken, err := GenerateTokens(user.ID, user.RoleID)
		if err != nil {
			logger.Error("Failed to sign tokens", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		setAuthCookies(c, accessToken, refreshToken)

		logger.Info("User logged in", zap.String("email", user.Email))
		c.JSON(http.StatusOK, publicProfile(user))
	}
}

// GET /auth/user
func CurrentUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var user models.User
		if err := db.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, publicProfile(user))
	}
}

// POST /auth/refresh
func RefreshHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshCookie, err := c.Cookie("refreshToken")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token not found"})
			return
		}

		userID, roleID, err := parseRefreshToken(refreshCookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
			return
		}

		accessToken, refreshToken, err := GenerateTokens(userID, roleID)
		if err != nil {
			logger.Error("Failed to sign tokens", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		setAuthCookies(c, accessToken, refreshToken)

		c.JSON(http.StatusOK, gin.H{"message": "Tokens refreshed successfully"})
	}
}

// POST /auth/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clearAuthCookies(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
