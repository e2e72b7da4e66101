package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 24 * time.Hour
)

func signToken(userID, roleID uint, ttl time.Duration, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      userID,
		"role_id": roleID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// GenerateTokens issues the access/refresh token pair for a user.
func GenerateTokens(userID, roleID uint) (accessToken, refreshToken string, err error) {
	accessToken, err = signToken(userID, roleID, accessTokenTTL, os.Getenv("ACCESS_SECRET"))
	if err != nil {
		return "", "", err
	}
	refreshToken, err = signToken(userID, roleID, refreshTokenTTL, os.Getenv("REFRESH_SECRET"))
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func parseRefreshToken(tokenString string) (userID, roleID uint, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("REFRESH_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.New("invalid token claims")
	}

	id, _ := claims["id"].(float64)
	role, _ := claims["role_id"].(float64)
	return uint(id), uint(role), nil
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", accessToken, int(accessTokenTTL.Seconds()), "/", "", secure, false)
	c.SetCookie("refreshToken", refreshToken, int(refreshTokenTTL.Seconds()), "/", "", secure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie("accessToken", "", -1, "/", "", secure, false)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)
}
