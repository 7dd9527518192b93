// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User
// model's messaging settings.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// MessagingSettings is the projection of a user's notification preferences.
type MessagingSettings struct {
	ChatNotifications  bool `json:"chat_notifications"`
	EmailNotifications bool `json:"email_notifications"`
}

// GetMessagingSettings returns the notification flags for userID, or
// ErrNotFound when the user does not exist.
func GetMessagingSettings(ctx context.Context, db *gorm.DB, userID int64) (*MessagingSettings, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Select("chat_notifications", "email_notifications").
		First(&u, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &MessagingSettings{
		ChatNotifications:  u.ChatNotifications,
		EmailNotifications: u.EmailNotifications,
	}, nil
}

// UpdateMessagingSettings applies a partial update to the notification flags.
// A nil pointer leaves the stored value unchanged (COALESCE semantics, per
// the settings contract). Returns ErrNotFound when the user does not exist.
func UpdateMessagingSettings(ctx context.Context, db *gorm.DB, userID int64, chat, email *bool) (*MessagingSettings, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if chat != nil {
		updates["chat_notifications"] = *chat
	}
	if email != nil {
		updates["email_notifications"] = *email
	}

	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetMessagingSettings(ctx, db, userID)
}
