package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authControllers "github.com/IskDev0/organick-backend/controllers/auth"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

func doGet(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func setupOrderFeedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("ACCESS_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupOrderRoutes(router, openTestDB(t), zaptest.NewLogger(t))
	return router
}

func TestOrderFeedRejectsAnonymousClients(t *testing.T) {
	router := setupOrderFeedRouter(t)

	w := doGet(t, router, "/ws/orders", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d without a token, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestOrderFeedRejectsNonAdmins(t *testing.T) {
	router := setupOrderFeedRouter(t)

	token, _, err := authControllers.GenerateTokens(7, models.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}

	w := doGet(t, router, "/ws/orders", token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for a customer token, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestOrderFeedAdmitsAdmins(t *testing.T) {
	router := setupOrderFeedRouter(t)

	token, _, err := authControllers.GenerateTokens(1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}

	// a plain GET is not a websocket handshake, so the upgrade fails with a
	// 400 once the request clears both auth gates
	w := doGet(t, router, "/ws/orders", token)
	if w.Code == http.StatusUnauthorized {
		t.Errorf("Expected an admin token to pass the auth gates, got %d", w.Code)
	}
}

func TestProductCategoriesRoute(t *testing.T) {
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := db.Create(&models.Category{Name: "Vegetables"}).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupProductRoutes(router, db, nil, zaptest.NewLogger(t))

	w := doGet(t, router, "/products/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Vegetables") {
		t.Errorf("Expected categories response to contain the seeded name, got %s", w.Body.String())
	}

	// the :id sibling must keep resolving next to the static route
	if w := doGet(t, router, "/products/999", ""); w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for a missing product, got %d", http.StatusNotFound, w.Code)
	}
}
