// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// CreateMessage inserts a new message row with a server-assigned UTC
// timestamp. The handle may be transaction-bound; callers that need the
// conversation-existence check and the insert to be atomic should pass a tx.
func CreateMessage(ctx context.Context, db *gorm.DB, senderID, receiverID, conversationID int64, content string, imageURL *string) (*domain.Message, error) {
	m := &domain.Message{
		SenderID:       senderID,
		ReceiverID:     receiverID,
		ConversationID: conversationID,
		Content:        content,
		ImageURL:       imageURL,
		Timestamp:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns every message in a conversation ordered oldest first
// (Timestamp ASC, ID ASC as tiebreak). Chat display depends on this order.
func ListMessages(ctx context.Context, db *gorm.DB, conversationID int64) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	return out, err
}

// GetConversation fetches a conversation by primary key. Returns ErrNotFound
// when absent; used inside send transactions to validate the reference.
func GetConversation(ctx context.Context, db *gorm.DB, id int64) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
