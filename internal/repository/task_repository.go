package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lastminute/internal/model"
)

// TaskRepository handles CRUD for planner task templates.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("due_date ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// SetCompletedDates persists the template with its completion set replaced.
// The write goes through Save so the set is stored through the model's JSON
// serializer; concurrent toggles on the same template are last-write-wins.
func (r *TaskRepository) SetCompletedDates(ctx context.Context, task *model.Task, dates []string) error {
	task.CompletedDates = dates
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("set completed dates: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// CountByCategory reports how many of the user's tasks reference a category
// name. Used to refuse deleting a category that is still in use.
func (r *TaskRepository) CountByCategory(ctx context.Context, userID uint, category string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tasks by category: %w", err)
	}
	return n, nil
}
