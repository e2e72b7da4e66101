package models

type TeamMember struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"not null" json:"full_name"`
	Position string `json:"position"`
	Image    string `json:"image"`
}

type Testimonial struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Author string `gorm:"not null" json:"author"`
	Quote  string `gorm:"not null" json:"quote"`
	Image  string `json:"image"`
}
