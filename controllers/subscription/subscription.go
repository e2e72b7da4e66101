package subscriptionControllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const unsubscribeTokenTTL = time.Hour

// Mailer sends transactional mail. The production implementation wraps
// Resend; tests substitute a stub.
type Mailer interface {
	SendUnsubscribeEmail(ctx context.Context, to, link string) error
}

type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer() *ResendMailer {
	return &ResendMailer{client: resend.NewClient(os.Getenv("RESEND_API_KEY"))}
}

func (m *ResendMailer) SendUnsubscribeEmail(ctx context.Context, to, link string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    "Organick <onboarding@resend.dev>",
		To:      []string{to},
		Subject: "Confirm unsubscribe",
		Html: fmt.Sprintf(`
        <p>Click the link below to unsubscribe</p>
        <a href="%s">Unsubscribe</a>
      `, link),
	})
	return err
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func signUnsubscribeToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(unsubscribeTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("EMAIL_SECRET")))
}

func parseUnsubscribeToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("EMAIL_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid or expired token")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("invalid or expired token")
	}
	return email, nil
}

// POST /subscription. New emails are inserted and previously
// unsubscribed ones are reactivated.
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
			return
		}

		var existing models.Subscriber
		err := db.Where("email = ? AND is_subscribed = false", req.Email).First(&existing).Error
		if err == nil {
			if err := db.Model(&existing).Update("is_subscribed", true).Error; err != nil {
				status, message := sqlerr.HTTPStatus(err)
				c.JSON(status, gin.H{"message": message})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if err := db.Create(&models.Subscriber{Email: req.Email, IsSubscribed: true}).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
	}
}

// POST /subscription/unsubscribe, emails a signed confirmation link
// rather than unsubscribing directly.
func RequestUnsubscribe(db *gorm.DB, mailer Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email not provided"})
			return
		}

		var subscriber models.Subscriber
		if err := db.Where("email = ?", req.Email).First(&subscriber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if !subscriber.IsSubscribed {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User is not subscribed"})
			return
		}

		token, err := signUnsubscribeToken(subscriber.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign token"})
			return
		}

		link := fmt.Sprintf("%s/unsubscribe?token=%s", os.Getenv("FRONTEND_URL"), token)
		if err := mailer.SendUnsubscribeEmail(c.Request.Context(), subscriber.Email, link); err != nil {
			logger.Error("Failed to send unsubscribe email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Unsubscribe confirmation email sent"})
	}
}

// GET /subscription/confirm-unsubscribe?token=...
func ConfirmUnsubscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Token is missing"})
			return
		}

		email, err := parseUnsubscribeToken(tokenString)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
			return
		}

		if err := db.Model(&models.Subscriber{}).
			Where("email = ?", email).
			Update("is_subscribed", false).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully unsubscribed"})
	}
}
