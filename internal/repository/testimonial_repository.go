package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lastminute/internal/model"
)

// TestimonialRepository handles CRUD for landing-page testimonials.
type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	var out []model.Testimonial
	if err := r.db.WithContext(ctx).Where("approved = ?", true).
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TestimonialRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	var out []model.Testimonial
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) SetApproved(ctx context.Context, t *model.Testimonial, approved bool) error {
	t.Approved = approved
	if err := r.db.WithContext(ctx).Model(t).Update("approved", approved).Error; err != nil {
		return fmt.Errorf("approve testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id).Error; err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
