// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Conversation model.
//
// Conversations identify an unordered pair of users. The pair is stored
// normalized (smaller ID first) and protected by a composite unique index,
// so lookup and insert can race without ever producing a duplicate row.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// NormalizePair returns the pair in canonical storage order (low, high).
func NormalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// GetConversationByPair fetches the conversation for an unordered user pair.
// Returns ErrNotFound when no conversation exists yet.
func GetConversationByPair(ctx context.Context, db *gorm.DB, userA, userB int64) (*domain.Conversation, error) {
	lo, hi := NormalizePair(userA, userB)
	var c domain.Conversation
	err := db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", lo, hi).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindOrCreateConversation returns the existing conversation for the pair or
// inserts a new one. Creation is idempotent: if a concurrent request wins the
// insert race, the unique index rejects ours and the winner's row is
// re-fetched and returned instead.
func FindOrCreateConversation(ctx context.Context, db *gorm.DB, userA, userB int64) (*domain.Conversation, error) {
	if c, err := GetConversationByPair(ctx, db, userA, userB); err == nil {
		return c, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lo, hi := NormalizePair(userA, userB)
	c := &domain.Conversation{User1ID: lo, User2ID: hi}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return GetConversationByPair(ctx, db, userA, userB)
		}
		return nil, err
	}
	return c, nil
}

// ListConversations returns all conversations in which the user participates,
// in store-default order.
func ListConversations(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&out).Error
	return out, err
}

// isUniqueViolation detects unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
