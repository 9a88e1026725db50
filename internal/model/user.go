package model

import "time"

// Roles a portal account can hold.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is a portal account. TelegramChatID, when set, opts the user into the
// daily planner digest.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name" validate:"required,max=100"`
	Email          string    `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role" validate:"required,oneof=student admin"`
	Semester       int       `json:"semester" validate:"min=0,max=12"`
	TelegramChatID int64     `json:"telegramChatId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
