package models

import "time"

type Subscriber struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	IsSubscribed bool      `gorm:"not null;default:true" json:"is_subscribed"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}
