package authControllers

import (
	"bytes"
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

func setupAuthTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("ACCESS_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.UserRole{}, &models.User{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := db.Create(&models.UserRole{ID: models.RoleCustomer, Name: "customer"}).Error; err != nil {
		t.Fatalf("Failed to seed role: %v", err)
	}

	zapLogger := zaptest.NewLogger(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", RegisterHandler(db, zapLogger))
	router.POST("/auth/login", LoginHandler(db, zapLogger))
	router.POST("/auth/refresh", RefreshHandler(zapLogger))

	return db, router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_CreatesCustomerAndSetsCookies(t *testing.T) {
	db, router := setupAuthTest(t)

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		FirstName: "Alice",
		LastName:  "Moore",
		Email:     "alice@example.com",
		Password:  "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var user models.User
	if err := db.First(&user, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("Expected user row: %v", err)
	}
	if user.RoleID != models.RoleCustomer {
		t.Errorf("Expected role %d, got %d", models.RoleCustomer, user.RoleID)
	}
	if user.PasswordHash == "secret123" {
		t.Error("Password must not be stored in plain text")
	}

	cookies := w.Result().Cookies()
	var hasAccess, hasRefresh bool
	for _, cookie := range cookies {
		switch cookie.Name {
		case "accessToken":
			hasAccess = cookie.Value != ""
		case "refreshToken":
			hasRefresh = cookie.Value != ""
			if !cookie.HttpOnly {
				t.Error("refreshToken cookie must be httpOnly")
			}
		}
	}
	if !hasAccess || !hasRefresh {
		t.Errorf("Expected both auth cookies, got access=%v refresh=%v", hasAccess, hasRefresh)
	}

	if strings.Contains(w.Body.String(), "password") {
		t.Error("Response must not leak password fields")
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	_, router := setupAuthTest(t)

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		FirstName: "Bob",
		LastName:  "Stone",
		Email:     "bob@example.com",
		Password:  "123",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, router := setupAuthTest(t)

	body := RegisterRequest{
		FirstName: "Carol",
		LastName:  "White",
		Email:     "carol@example.com",
		Password:  "secret123",
	}
	if w := postJSON(t, router, "/auth/register", body); w.Code != http.StatusOK {
		t.Fatalf("First register failed with %d", w.Code)
	}

	w := postJSON(t, router, "/auth/register", body)
	if w.Code == http.StatusOK {
		t.Error("Expected duplicate email to be rejected")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, router := setupAuthTest(t)

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	_, router := setupAuthTest(t)

	postJSON(t, router, "/auth/register", RegisterRequest{
		FirstName: "Dave",
		LastName:  "Hill",
		Email:     "dave@example.com",
		Password:  "secret123",
	})

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "dave@example.com",
		Password: "wrong-password",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	_, router := setupAuthTest(t)

	postJSON(t, router, "/auth/register", RegisterRequest{
		FirstName: "Erin",
		LastName:  "Park",
		Email:     "erin@example.com",
		Password:  "secret123",
	})

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "erin@example.com",
		Password: "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["role"] != "customer" {
		t.Errorf("Expected role customer, got %v", resp["role"])
	}
}

func TestRefresh_RoundTrip(t *testing.T) {
	_, router := setupAuthTest(t)

	_, refreshToken, err := GenerateTokens(42, models.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: refreshToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	_, router := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "not-a-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthCookieLifetimesMatchTokenTTLs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	setAuthCookies(c, "access-token", "refresh-token")

	var access, refresh *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		switch cookie.Name {
		case "accessToken":
			access = cookie
		case "refreshToken":
			refresh = cookie
		}
	}
	if access == nil || refresh == nil {
		t.Fatal("Expected both auth cookies to be set")
	}

	if access.MaxAge != int(accessTokenTTL.Seconds()) {
		t.Errorf("Expected access cookie Max-Age %d, got %d", int(accessTokenTTL.Seconds()), access.MaxAge)
	}
	// the cookie must not outlive the token it carries
	if refresh.MaxAge != int(refreshTokenTTL.Seconds()) {
		t.Errorf("Expected refresh cookie Max-Age %d, got %d", int(refreshTokenTTL.Seconds()), refresh.MaxAge)
	}
	if !refresh.HttpOnly {
		t.Error("Expected the refresh cookie to be httpOnly")
	}
}
