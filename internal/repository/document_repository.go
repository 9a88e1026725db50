package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lastminute/internal/model"
)

// DocumentFilter narrows document listings. Zero values match everything.
type DocumentFilter struct {
	Subject  string
	Semester int
	Type     string
	Query    string
	Status   string
}

// DocumentRepository handles CRUD for course resource metadata.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context, filter DocumentFilter) ([]model.Document, error) {
	q := r.db.WithContext(ctx).Model(&model.Document{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Semester != 0 {
		q = q.Where("semester = ?", filter.Semester)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var docs []model.Document
	if err := q.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) FindByPublicID(ctx context.Context, publicID string) (*model.Document, error) {
	var doc model.Document
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) SetStatus(ctx context.Context, doc *model.Document, status string) error {
	doc.Status = status
	if err := r.db.WithContext(ctx).Model(doc).Update("status", status).Error; err != nil {
		return fmt.Errorf("set document status: %w", err)
	}
	return nil
}

// IncrementDownloads bumps the counter atomically in the database.
func (r *DocumentRepository) IncrementDownloads(ctx context.Context, doc *model.Document) error {
	if err := r.db.WithContext(ctx).Model(doc).
		Update("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		return fmt.Errorf("increment downloads: %w", err)
	}
	doc.Downloads++
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, publicID string) error {
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).
		Delete(&model.Document{}).Error; err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// DeleteRejectedBefore purges rejected documents older than the cutoff.
func (r *DocumentRepository) DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("status = ? AND updated_at < ?", model.DocumentRejected, cutoff).
		Delete(&model.Document{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge rejected documents: %w", res.Error)
	}
	return res.RowsAffected, nil
}
