package service

import (
	"context"
	"fmt"

	"lastminute/internal/model"
	"lastminute/internal/repository"
)

// CategoryService provides helpers around planner categories.
type CategoryService struct {
	repo     *repository.CategoryRepository
	taskRepo *repository.TaskRepository
}

func NewCategoryService(repo *repository.CategoryRepository, taskRepo *repository.TaskRepository) *CategoryService {
	return &CategoryService{repo: repo, taskRepo: taskRepo}
}

func (s *CategoryService) List(ctx context.Context, user *model.User) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, user.ID)
}

func (s *CategoryService) Create(ctx context.Context, user *model.User, name string) (*model.Category, error) {
	category := model.Category{UserID: user.ID, Name: name}
	if err := model.ValidateStruct(&category); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category unless any of the user's tasks still references
// its name; tasks carry the category by name, so deleting an in-use category
// would leave them dangling.
func (s *CategoryService) Delete(ctx context.Context, user *model.User, id uint) error {
	category, err := s.repo.FindByID(ctx, user.ID, id)
	if err != nil {
		return err
	}
	inUse, err := s.taskRepo.CountByCategory(ctx, user.ID, category.Name)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("category %q is used by %d task(s)", category.Name, inUse)
	}
	return s.repo.Delete(ctx, user.ID, id)
}
