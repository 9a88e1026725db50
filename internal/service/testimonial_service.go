package service

import (
	"context"
	"fmt"

	"lastminute/internal/model"
	"lastminute/internal/repository"
)

// TestimonialService wraps testimonial submission and moderation.
type TestimonialService struct {
	repo *repository.TestimonialRepository
}

func NewTestimonialService(repo *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// Submit records a testimonial; it stays hidden until an admin approves it.
func (s *TestimonialService) Submit(ctx context.Context, user *model.User, text string, rating int) (*model.Testimonial, error) {
	t := model.Testimonial{
		UserID: user.ID,
		Author: user.Name,
		Text:   text,
		Rating: rating,
	}
	if err := model.ValidateStruct(&t); err != nil {
		return nil, fmt.Errorf("invalid testimonial: %w", err)
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.ListApproved(ctx)
}

func (s *TestimonialService) AdminList(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.ListAll(ctx)
}

func (s *TestimonialService) Approve(ctx context.Context, id uint) (*model.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetApproved(ctx, t, true); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
