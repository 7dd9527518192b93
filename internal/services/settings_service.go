// Package services – SettingsService
//
// Per-user messaging settings. The user identity always comes from the
// bearer token, never from the request body, and updates are partial: a nil
// field leaves the stored value untouched.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/repo"
)

// SettingsService implements the messaging-settings use-cases.
type SettingsService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Get returns the notification flags for userID, or ErrUserNotFound.
func (s *SettingsService) Get(ctx context.Context, userID int64) (*repo.MessagingSettings, error) {
	out, err := repo.GetMessagingSettings(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return out, nil
}

// Update applies a partial update to the notification flags and returns the
// resulting settings, or ErrUserNotFound when the user does not exist.
func (s *SettingsService) Update(ctx context.Context, userID int64, chat, email *bool) (*repo.MessagingSettings, error) {
	out, err := repo.UpdateMessagingSettings(ctx, s.DB, userID, chat, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return out, nil
}
