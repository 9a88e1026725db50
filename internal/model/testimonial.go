package model

import "time"

// Testimonial is a short user-submitted review shown on the landing page
// once an admin approves it.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Author    string    `json:"author"`
	Text      string    `json:"text" validate:"required,max=500"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Approved  bool      `gorm:"default:false" json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
