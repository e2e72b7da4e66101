package models

import (
	"math"
	"time"
)

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Discount    float64   `gorm:"default:0" json:"discount"` // percentage, 0..100
	Rating      float64   `gorm:"default:0" json:"rating"`
	Image       string    `json:"image"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Reviews     []Review  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FinalPrice is the catalog price with the discount applied, rounded to cents.
// Order totals are always computed from this value, never from client input.
func (p Product) FinalPrice() float64 {
	price := p.Price
	if p.Discount > 0 {
		price = p.Price - p.Price*p.Discount/100
	}
	return math.Round(price*100) / 100
}
