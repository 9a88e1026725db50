package model

import "time"

// Document moderation states.
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// Document is the metadata record for an uploaded course resource. The file
// itself lives behind FileURL; this service only tracks and moderates the
// metadata.
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PublicID    string    `gorm:"uniqueIndex" json:"id"`
	UploaderID  uint      `gorm:"index" json:"-"`
	Title       string    `json:"title" validate:"required,max=200"`
	Subject     string    `gorm:"index" json:"subject" validate:"required,max=100"`
	Semester    int       `gorm:"index" json:"semester" validate:"min=1,max=12"`
	Type        string    `json:"type" validate:"required,oneof=paper notes syllabus other"`
	FileURL     string    `json:"fileUrl" validate:"required,url"`
	Description string    `json:"description" validate:"max=1000"`
	Status      string    `gorm:"index;default:pending" json:"status"`
	Downloads   int64     `json:"downloads"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
