package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// fakeAuth injects the caller identity the way ValidateToken does, without
// needing a signed token.
func fakeAuth(userID, roleID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRoleID, roleID)
		c.Next()
	}
}

func setupOrderRouter(t *testing.T, db *gorm.DB, userID, roleID uint) *gin.Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(userID, roleID))
	router.POST("/orders", PlaceOrderHandler(db, logger))
	router.GET("/orders/:id", GetOrderByIDHandler(db))
	router.PATCH("/orders/:id/cancel", CancelOrderHandler(db))
	router.PATCH("/orders/:id/status", UpdateOrderStatusHandler(db))
	router.DELETE("/orders/:id", DeleteOrderHandler(db))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderHandler_Success(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 5)
	router := setupOrderRouter(t, db, 1, models.RoleCustomer)

	w := doJSON(t, router, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
		TotalAmount: 20.00,
		Address:     testAddress(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["orderId"] == nil {
		t.Error("Expected orderId in response")
	}
}

func TestPlaceOrderHandler_ValidationFailureIs400(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 1)
	router := setupOrderRouter(t, db, 1, models.RoleCustomer)

	w := doJSON(t, router, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 10}},
		TotalAmount: 100.00,
		Address:     testAddress(),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	assertNothingPersisted(t, db)
}

func TestGetOrderByIDHandler_OwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 5)

	owner := setupOrderRouter(t, db, 1, models.RoleCustomer)
	w := doJSON(t, owner, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		TotalAmount: 10.00,
		Address:     testAddress(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("PlaceOrder failed: %s", w.Body.String())
	}

	if w := doJSON(t, owner, http.MethodGet, "/orders/1", nil); w.Code != http.StatusOK {
		t.Errorf("Owner expected %d, got %d", http.StatusOK, w.Code)
	}

	stranger := setupOrderRouter(t, db, 2, models.RoleCustomer)
	if w := doJSON(t, stranger, http.MethodGet, "/orders/1", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("Stranger expected %d, got %d", http.StatusUnauthorized, w.Code)
	}

	admin := setupOrderRouter(t, db, 3, models.RoleAdmin)
	if w := doJSON(t, admin, http.MethodGet, "/orders/1", nil); w.Code != http.StatusOK {
		t.Errorf("Admin expected %d, got %d", http.StatusOK, w.Code)
	}
}

func TestCancelOrderHandler_PendingOrder(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 5)
	router := setupOrderRouter(t, db, 1, models.RoleCustomer)

	doJSON(t, router, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		TotalAmount: 10.00,
		Address:     testAddress(),
	})

	if w := doJSON(t, router, http.MethodPatch, "/orders/1/cancel", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var order models.Order
	if err := db.First(&order, 1).Error; err != nil {
		t.Fatalf("Failed to reload order: %v", err)
	}
	if order.Status != models.OrderStatusCancelled {
		t.Errorf("Expected status %s, got %s", models.OrderStatusCancelled, order.Status)
	}

	// cancelled is terminal
	if w := doJSON(t, router, http.MethodPatch, "/orders/1/cancel", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected repeat cancel to fail with %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateOrderStatusHandler_RejectsInvalidTransition(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 5)
	router := setupOrderRouter(t, db, 1, models.RoleAdmin)

	doJSON(t, router, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		TotalAmount: 10.00,
		Address:     testAddress(),
		Payment:     &PaymentRequest{Amount: 10.00, PaymentMethod: "card"},
	})

	// paid -> cancelled is not allowed
	w := doJSON(t, router, http.MethodPatch, "/orders/1/status", gin.H{"status": "cancelled"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	// paid -> shipped is
	w = doJSON(t, router, http.MethodPatch, "/orders/1/status", gin.H{"status": "shipped"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	// unknown status string
	w = doJSON(t, router, http.MethodPatch, "/orders/1/status", gin.H{"status": "teleported"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestDeleteOrderHandler_RemovesAllRows(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, 10.00, 0, 5)
	router := setupOrderRouter(t, db, 1, models.RoleAdmin)

	doJSON(t, router, http.MethodPost, "/orders", PlaceOrderRequest{
		Items:       []OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		TotalAmount: 10.00,
		Address:     testAddress(),
		Payment:     &PaymentRequest{Amount: 10.00, PaymentMethod: "card"},
	})

	if w := doJSON(t, router, http.MethodDelete, "/orders/1", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	assertNothingPersisted(t, db)
}
