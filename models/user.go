package models

import "time"

// Role IDs are seeded in main; analytics relies on RoleCustomer.
const (
	RoleCustomer uint = 1
	RoleAdmin    uint = 2
	RoleAuthor   uint = 3
)

type UserRole struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type User struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string        `gorm:"not null" json:"first_name"`
	LastName     string        `gorm:"not null" json:"last_name"`
	Email        string        `gorm:"unique;not null" json:"email"`
	Phone        string        `json:"phone"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Image        string        `json:"image"`
	RoleID       uint          `gorm:"not null;default:1" json:"-"`
	Role         UserRole      `gorm:"foreignKey:RoleID" json:"role"`
	Addresses    []UserAddress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders       []Order       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
