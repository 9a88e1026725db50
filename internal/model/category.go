package model

import "time"

// Category groups planner tasks by area (subjects, exams, personal, etc.).
// Tasks reference categories by name, scoped to the owning user.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_user_category_name,unique" json:"-"`
	Name      string    `gorm:"index:idx_user_category_name,unique" json:"name" validate:"required,max=50"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
