package orderControllers

import (
	"errors"
	"fmt"
	"math"

	"github.com/IskDev0/organick-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// totalTolerance absorbs float rounding when comparing money values; amounts
// are stored as numeric(10,2).
const totalTolerance = 0.01

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrUnknownProduct    = errors.New("product does not exist")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentMismatch   = errors.New("payment amount does not match order total")
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type AddressRequest struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

type PaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

type PlaceOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required"`
	TotalAmount float64            `json:"total_amount" binding:"required"`
	Address     AddressRequest     `json:"address" binding:"required"`
	Payment     *PaymentRequest    `json:"payment"`
}

func validateRequest(req PlaceOrderRequest) error {
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.Price < 0 {
			return ErrInvalidPrice
		}
	}
	if req.TotalAmount <= 0 {
		return errors.New("total amount must be positive")
	}
	return nil
}

// -------- Core Logic --------

// lockForUpdate takes a row lock on Postgres. SQLite has no FOR UPDATE
// and serializes writes on its own, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// PlaceOrder records an order, its line items, the shipping address and the
// optional payment as one transaction. The total is recomputed from current
// catalog prices, so the client-sent figure never becomes the stored total.
// Any failure rolls the whole write sequence back.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		orderItems := make([]models.OrderItem, 0, len(req.Items))

		for _, item := range req.Items {
			var product models.Product
			if err := lockForUpdate(tx).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrUnknownProduct, item.ProductID)
				}
				return err
			}

			// Stock is re-checked under the row lock so two concurrent
			// checkouts cannot both take the last unit.
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}
			if err := tx.Model(&product).
				Update("stock", product.Stock-item.Quantity).Error; err != nil {
				return err
			}

			price := product.FinalPrice()
			total += price * float64(item.Quantity)

			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		total = math.Round(total*100) / 100

		order = models.Order{
			UserID:      userID,
			Items:       orderItems,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		address := models.ShippingAddress{
			UserID:       userID,
			OrderID:      order.ID,
			AddressLine1: req.Address.AddressLine1,
			AddressLine2: req.Address.AddressLine2,
			City:         req.Address.City,
			State:        req.Address.State,
			PostalCode:   req.Address.PostalCode,
			Country:      req.Address.Country,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		order.ShippingAddress = &address

		if req.Payment != nil {
			if math.Abs(req.Payment.Amount-total) > totalTolerance {
				return ErrPaymentMismatch
			}

			payment := models.Payment{
				OrderID:       order.ID,
				Amount:        req.Payment.Amount,
				PaymentMethod: req.Payment.PaymentMethod,
				PaymentStatus: models.PaymentStatusCompleted,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", models.OrderStatusPaid).Error; err != nil {
				return err
			}
			order.Status = models.OrderStatusPaid
			order.Payment = &payment
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// IsValidationError reports whether a checkout failure was caused by the
// request rather than the storage layer.
func IsValidationError(err error) bool {
	for _, candidate := range []error{
		ErrEmptyCart, ErrInvalidQuantity, ErrInvalidPrice,
		ErrUnknownProduct, ErrInsufficientStock, ErrPaymentMismatch,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
