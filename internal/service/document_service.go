package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lastminute/internal/model"
	"lastminute/internal/repository"
)

// DocumentInput represents metadata for a newly submitted resource.
type DocumentInput struct {
	Title       string
	Subject     string
	Semester    int
	Type        string
	FileURL     string
	Description string
}

// DocumentService wraps course-resource metadata logic and moderation.
type DocumentService struct {
	repo *repository.DocumentRepository
}

func NewDocumentService(repo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// Submit records a new document. Student submissions start pending; admin
// submissions are approved immediately.
func (s *DocumentService) Submit(ctx context.Context, user *model.User, input DocumentInput) (*model.Document, error) {
	doc := model.Document{
		PublicID:    uuid.NewString(),
		UploaderID:  user.ID,
		Title:       input.Title,
		Subject:     input.Subject,
		Semester:    input.Semester,
		Type:        input.Type,
		FileURL:     input.FileURL,
		Description: input.Description,
		Status:      model.DocumentPending,
	}
	if user.Role == model.RoleAdmin {
		doc.Status = model.DocumentApproved
	}
	if err := model.ValidateStruct(&doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	if err := s.repo.Create(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Browse lists approved documents matching the filter.
func (s *DocumentService) Browse(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, error) {
	filter.Status = model.DocumentApproved
	return s.repo.List(ctx, filter)
}

// AdminList lists documents in any moderation state.
func (s *DocumentService) AdminList(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, error) {
	return s.repo.List(ctx, filter)
}

// Download bumps the counter and returns the document for its file URL.
// Only approved documents are downloadable.
func (s *DocumentService) Download(ctx context.Context, publicID string) (*model.Document, error) {
	doc, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if doc.Status != model.DocumentApproved {
		return nil, fmt.Errorf("document %s is not available", publicID)
	}
	if err := s.repo.IncrementDownloads(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SetStatus moves a document between moderation states.
func (s *DocumentService) SetStatus(ctx context.Context, publicID, status string) (*model.Document, error) {
	switch status {
	case model.DocumentApproved, model.DocumentRejected, model.DocumentPending:
	default:
		return nil, fmt.Errorf("unknown document status %q", status)
	}
	doc, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetStatus(ctx, doc, status); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, publicID string) error {
	return s.repo.Delete(ctx, publicID)
}

// PurgeRejected deletes rejected documents whose last update is older than
// the retention period.
func (s *DocumentService) PurgeRejected(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.DeleteRejectedBefore(ctx, time.Now().Add(-retention))
}
