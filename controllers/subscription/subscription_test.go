package subscriptionControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubMailer struct {
	to   string
	link string
	err  error
}

func (m *stubMailer) SendUnsubscribeEmail(ctx context.Context, to, link string) error {
	m.to = to
	m.link = link
	return m.err
}

func setupSubscriptionTest(t *testing.T, mailer Mailer) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("EMAIL_SECRET", "test-email-secret")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Subscriber{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/subscription", Subscribe(db))
	router.POST("/subscription/unsubscribe", RequestUnsubscribe(db, mailer, zaptest.NewLogger(t)))
	router.GET("/subscription/confirm-unsubscribe", ConfirmUnsubscribe(db))

	return db, router
}

func subscribe(t *testing.T, router *gin.Engine, email string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(gin.H{"email": email})
	req := httptest.NewRequest(http.MethodPost, "/subscription", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubscribe_NewEmail(t *testing.T) {
	db, router := setupSubscriptionTest(t, &stubMailer{})

	if w := subscribe(t, router, "reader@example.com"); w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var subscriber models.Subscriber
	if err := db.First(&subscriber, "email = ?", "reader@example.com").Error; err != nil {
		t.Fatalf("Expected subscriber row: %v", err)
	}
	if !subscriber.IsSubscribed {
		t.Error("Expected subscriber to be active")
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	_, router := setupSubscriptionTest(t, &stubMailer{})

	if w := subscribe(t, router, "not-an-email"); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSubscribe_ReactivatesUnsubscribed(t *testing.T) {
	db, router := setupSubscriptionTest(t, &stubMailer{})

	if err := db.Create(&models.Subscriber{
		Email:        "lapsed@example.com",
		IsSubscribed: false,
	}).Error; err != nil {
		t.Fatalf("Failed to seed subscriber: %v", err)
	}

	if w := subscribe(t, router, "lapsed@example.com"); w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var subscriber models.Subscriber
	if err := db.First(&subscriber, "email = ?", "lapsed@example.com").Error; err != nil {
		t.Fatalf("Failed to reload subscriber: %v", err)
	}
	if !subscriber.IsSubscribed {
		t.Error("Expected subscriber to be reactivated")
	}

	var count int64
	db.Model(&models.Subscriber{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 subscriber row, got %d", count)
	}
}

func TestUnsubscribe_FullFlow(t *testing.T) {
	mailer := &stubMailer{}
	db, router := setupSubscriptionTest(t, mailer)

	subscribe(t, router, "leaver@example.com")

	payload, _ := json.Marshal(gin.H{"email": "leaver@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/subscription/unsubscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if mailer.to != "leaver@example.com" {
		t.Errorf("Expected mail to leaver@example.com, got %q", mailer.to)
	}

	// the confirmation link carries the signed token
	idx := strings.Index(mailer.link, "token=")
	if idx < 0 {
		t.Fatalf("Expected token in link, got %q", mailer.link)
	}
	token := mailer.link[idx+len("token="):]

	confirmReq := httptest.NewRequest(http.MethodGet, "/subscription/confirm-unsubscribe?token="+token, nil)
	confirmW := httptest.NewRecorder()
	router.ServeHTTP(confirmW, confirmReq)

	if confirmW.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, confirmW.Code, confirmW.Body.String())
	}

	var subscriber models.Subscriber
	if err := db.First(&subscriber, "email = ?", "leaver@example.com").Error; err != nil {
		t.Fatalf("Failed to reload subscriber: %v", err)
	}
	if subscriber.IsSubscribed {
		t.Error("Expected subscriber to be unsubscribed")
	}
}

func TestUnsubscribe_UnknownEmail(t *testing.T) {
	_, router := setupSubscriptionTest(t, &stubMailer{})

	payload, _ := json.Marshal(gin.H{"email": "ghost@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/subscription/unsubscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestConfirmUnsubscribe_BadToken(t *testing.T) {
	_, router := setupSubscriptionTest(t, &stubMailer{})

	req := httptest.NewRequest(http.MethodGet, "/subscription/confirm-unsubscribe?token=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
