package service

import (
	"context"
	"fmt"

	"lastminute/internal/model"
	"lastminute/internal/planner"
	"lastminute/internal/repository"
)

// TaskInput represents data required to create a planner task template.
type TaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     string
	Time        string
	Recurrence  string
	Notes       string
}

// TaskUpdate carries partial changes to an existing template. Nil fields are
// left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	DueDate     *string
	Time        *string
	Recurrence  *string
	Notes       *string
}

// ToggleResult reports the outcome of flipping one occurrence's completion.
type ToggleResult struct {
	Task   *model.Task `json:"task"`
	Action string      `json:"action"` // "marked" or "unmarked"
}

// TaskService wraps planner business logic: template CRUD, the
// toggle-completion operation and the materialized view.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	task := model.Task{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Time:        input.Time,
		Recurrence:  input.Recurrence,
		Notes:       input.Notes,
	}
	if task.Recurrence == "" {
		task.Recurrence = string(planner.RecurrenceNone)
	}
	if err := s.validateTask(ctx, user.ID, &task); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, user *model.User) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, user.ID)
}

func (s *TaskService) GetTask(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, user.ID, taskID)
}

// UpdateTask applies a partial update, re-validates the whole template and
// prunes completed dates that the new anchor/recurrence can no longer
// produce, preserving the invariant that every completed date is a valid
// occurrence date.
func (s *TaskService) UpdateTask(ctx context.Context, user *model.User, taskID uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}

	applyString(&task.Title, update.Title)
	applyString(&task.Description, update.Description)
	applyString(&task.Category, update.Category)
	applyString(&task.Priority, update.Priority)
	applyString(&task.DueDate, update.DueDate)
	applyString(&task.Time, update.Time)
	applyString(&task.Recurrence, update.Recurrence)
	applyString(&task.Notes, update.Notes)

	if err := s.validateTask(ctx, user.ID, task); err != nil {
		return nil, err
	}

	tpl, err := task.Template()
	if err != nil {
		return nil, err
	}
	kept := task.CompletedDates[:0]
	for _, raw := range task.CompletedDates {
		d, err := planner.ParseDate(raw)
		if err != nil || !tpl.IsOccurrenceDate(d) {
			continue
		}
		kept = append(kept, raw)
	}
	task.CompletedDates = kept

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, user *model.User, taskID uint) error {
	return s.taskRepo.Delete(ctx, user.ID, taskID)
}

// ToggleCompletion flips the completion state of one occurrence, identified
// by template id and occurrence date. The date is added to or removed from
// the template's completion set; toggling twice restores the original state.
func (s *TaskService) ToggleCompletion(ctx context.Context, user *model.User, taskID uint, date string) (*ToggleResult, error) {
	d, err := planner.ParseDate(date)
	if err != nil {
		return nil, err
	}
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	tpl, err := task.Template()
	if err != nil {
		return nil, err
	}
	if !tpl.IsOccurrenceDate(d) {
		return nil, fmt.Errorf("%s is not an occurrence date of task %d", d, taskID)
	}

	key := d.String()
	action := "marked"
	dates := make([]string, 0, len(task.CompletedDates)+1)
	for _, existing := range task.CompletedDates {
		if existing == key {
			action = "unmarked"
			continue
		}
		dates = append(dates, existing)
	}
	if action == "marked" {
		dates = append(dates, key)
	}

	if err := s.taskRepo.SetCompletedDates(ctx, task, dates); err != nil {
		return nil, err
	}
	return &ToggleResult{Task: task, Action: action}, nil
}

// View materializes the user's templates over the window derived from the
// view mode and anchor date, then applies the filter and sort stage.
func (s *TaskService) View(ctx context.Context, user *model.User, mode planner.ViewMode, anchor string, filter planner.Filter, sortKey planner.SortKey) ([]planner.Occurrence, error) {
	anchorDate, err := planner.ParseDate(anchor)
	if err != nil {
		return nil, err
	}
	window, err := planner.WindowFor(mode, anchorDate)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	templates := make([]planner.Template, 0, len(tasks))
	for i := range tasks {
		tpl, err := tasks[i].Template()
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	occurrences := planner.MaterializeAll(templates, window)
	occurrences = filter.Apply(occurrences)
	planner.Sort(occurrences, sortKey)
	return occurrences, nil
}

func (s *TaskService) validateTask(ctx context.Context, userID uint, task *model.Task) error {
	if err := model.ValidateStruct(task); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	ok, err := s.categoryRepo.Exists(ctx, userID, task.Category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown category %q", task.Category)
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
