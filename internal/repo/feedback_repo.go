// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model (append-only form submissions).
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// CreateFeedback inserts a feedback row with a server-assigned timestamp.
func CreateFeedback(ctx context.Context, db *gorm.DB, name, email, message string) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// ListFeedback returns all feedback rows, most recent first.
func ListFeedback(ctx context.Context, db *gorm.DB) ([]domain.Feedback, error) {
	var out []domain.Feedback
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
