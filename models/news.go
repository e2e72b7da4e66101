package models

import "time"

type News struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Content          string    `gorm:"not null" json:"content"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	User             User      `gorm:"foreignKey:UserID" json:"-"`
	Preview          string    `json:"preview"`
	ShortDescription string    `json:"short_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
