package model

import (
	"fmt"
	"time"

	"lastminute/internal/planner"
)

// Task is a stored planner task template. DueDate is the anchor occurrence
// for recurring tasks, or the sole occurrence for one-off ones; concrete
// dated occurrences are derived at read time and never persisted.
type Task struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"-"`
	Title          string    `json:"title" validate:"required,max=100"`
	Description    string    `json:"description" validate:"max=500"`
	Category       string    `json:"category" validate:"required"`
	Priority       string    `json:"priority" validate:"required,oneof=low medium high"`
	DueDate        string    `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Time           string    `json:"time" validate:"omitempty,datetime=15:04"`
	Recurrence     string    `json:"recurrence" validate:"required,oneof=none daily weekly monthly"`
	Notes          string    `json:"notes" validate:"max=1000"`
	CompletedDates []string  `gorm:"serializer:json" json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Template converts the stored task into the materializer's input form.
// Fails only on a malformed stored due date, which validation at the write
// path is supposed to rule out.
func (t *Task) Template() (planner.Template, error) {
	due, err := planner.ParseDate(t.DueDate)
	if err != nil {
		return planner.Template{}, fmt.Errorf("task %d: %w", t.ID, err)
	}
	completed := make(map[string]struct{}, len(t.CompletedDates))
	for _, d := range t.CompletedDates {
		completed[d] = struct{}{}
	}
	return planner.Template{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Due:         due,
		TimeOfDay:   t.Time,
		Recurrence:  planner.Recurrence(t.Recurrence),
		Notes:       t.Notes,
		Completed:   completed,
	}, nil
}
