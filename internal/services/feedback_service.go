// Package services – FeedbackService
//
// Append-only feedback submissions from the public form. Validation lives
// here so both the HTTP handler and any future intake path share it.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
	"github.com/petmatch/petmatch-server/internal/repo"
)

// FeedbackService implements the feedback use-cases.
type FeedbackService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Submit validates and stores one feedback entry. All three fields are
// required; otherwise ErrInvalidFeedback.
func (s *FeedbackService) Submit(ctx context.Context, name, email, message string) (*domain.Feedback, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrInvalidFeedback
	}
	return repo.CreateFeedback(ctx, s.DB, name, email, message)
}

// List returns all feedback entries, most recent first.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return repo.ListFeedback(ctx, s.DB)
}
