package orderControllers

import (
	"errors"
	"net/http"

	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/pagination"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		userID := middleware.UserID(c)

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			if IsValidationError(err) {
				middleware.RecordOrderPlaced("rejected")
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			middleware.RecordOrderPlaced("failed")
			logger.Error("Order creation failed",
				zap.Uint("user_id", userID),
				zap.Error(err))
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		middleware.RecordOrderPlaced("created")
		logger.Info("Order created",
			zap.Uint("order_id", order.ID),
			zap.Uint("user_id", userID),
			zap.Float64("total", order.TotalAmount))

		broadcastNewOrder(*order)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order created successfully",
			"orderId": order.ID,
		})
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
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
			Preload("Payment").
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

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		roleID := middleware.RoleID(c)

		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("ShippingAddress").
			Preload("Payment").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if order.UserID != userID && roleID != models.RoleAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not allowed to access this resource"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:id/cancel, user cancellation.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if order.UserID != userID {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not allowed to access this resource"})
			return
		}

		if !order.Status.CanTransitionTo(models.OrderStatusCancelled) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Order cannot be cancelled from status " + string(order.Status),
			})
			return
		}

		if err := db.Model(&order).
			Update("status", models.OrderStatusCancelled).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PATCH /orders/:id/status, admin transition validated against the status
// machine.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if !order.Status.CanTransitionTo(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid status transition: " + string(order.Status) + " -> " + string(newStatus),
			})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /orders/:id, admin cleanup; items, payment and address go with the
// order in one transaction.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.ShippingAddress{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
