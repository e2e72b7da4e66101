package models

import "time"

// ShippingAddress is the address snapshot written together with an order.
type ShippingAddress struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	OrderID      uint   `gorm:"not null;uniqueIndex" json:"order_id"`
	AddressLine1 string `gorm:"not null" json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `gorm:"not null" json:"city"`
	State        string `gorm:"not null" json:"state"`
	PostalCode   string `gorm:"not null" json:"postal_code"`
	Country      string `gorm:"not null" json:"country"`
}

// UserAddress is a reusable address-book entry.
type UserAddress struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	AddressLine1 string    `gorm:"not null" json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `gorm:"type:varchar(255);not null" json:"city"`
	State        string    `gorm:"type:varchar(255);not null" json:"state"`
	PostalCode   string    `gorm:"type:varchar(255);not null" json:"postal_code"`
	Country      string    `gorm:"type:varchar(255);not null" json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
