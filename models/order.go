package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment recorded
	OrderStatusShipped   OrderStatus = "shipped"   // handed to fulfillment
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// orderTransitions holds the allowed status moves. shipped and cancelled are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusPaid):
		return OrderStatusPaid, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint             `gorm:"not null;index" json:"user_id"`
	User            User             `gorm:"foreignKey:UserID" json:"-"`
	Items           []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64          `gorm:"not null" json:"total_amount"`
	Status          OrderStatus      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ShippingAddress *ShippingAddress `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping_address,omitempty"`
	Payment         *Payment         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// OrderItem snapshots the product price at order time; catalog price changes
// never touch it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

type Payment struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint          `gorm:"not null;uniqueIndex" json:"order_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentMethod string        `gorm:"type:varchar(255);not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}
