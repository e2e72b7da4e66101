package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRoleID = "role_id"
)

// ValidateToken checks the access token from the Authorization header or the
// accessToken cookie and stores the caller's id and role in the context.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("ACCESS_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired or invalid"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["id"].(float64)
	roleID, _ := claims["role_id"].(float64)
	c.Set(ContextUserID, uint(userID))
	c.Set(ContextRoleID, uint(roleID))

	c.Next()
}

// UserID returns the authenticated caller's id from the context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(uint)
	return userID
}

// RoleID returns the authenticated caller's role id from the context.
func RoleID(c *gin.Context) uint {
	value, _ := c.Get(ContextRoleID)
	roleID, _ := value.(uint)
	return roleID
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return header
	}
	cookie, err := c.Cookie("accessToken")
	if err != nil {
		return ""
	}
	return cookie
}
