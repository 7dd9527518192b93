// Package services – ChatService
//
// This file implements the ChatService, which manages conversations and the
// messages inside them. Conversation creation is idempotent over the
// unordered user pair; message sends run inside a transaction so that the
// conversation-existence check and the insert are atomic, and a failed send
// persists nothing.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
	"github.com/petmatch/petmatch-server/internal/repo"
)

// ChatService implements the conversation and message use-cases.
type ChatService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// StartConversation returns the conversation for the unordered pair
// (userA, userB), creating it on first contact. Calling it again with the
// same pair in either order returns the same row.
func (s *ChatService) StartConversation(ctx context.Context, userA, userB int64) (*domain.Conversation, error) {
	if userA <= 0 || userB <= 0 || userA == userB {
		return nil, ErrInvalidMessage
	}
	return repo.FindOrCreateConversation(ctx, s.DB, userA, userB)
}

// ListConversations returns every conversation the user participates in.
func (s *ChatService) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	return repo.ListConversations(ctx, s.DB, userID)
}

// ListMessages returns the conversation's messages oldest first.
func (s *ChatService) ListMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	return repo.ListMessages(ctx, s.DB, conversationID)
}

// SendMessage validates and persists one message, returning the stored row
// with its assigned ID and timestamp.
//
// Validation: sender, receiver, and conversation ids must be positive and
// content non-empty; otherwise ErrInvalidMessage. The insert runs in a
// transaction: a missing conversation (checked up front and enforced again
// by the FK) rolls back and yields ErrConversationNotFound, leaving the
// store unchanged.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, conversationID int64, content string, imageURL *string) (*domain.Message, error) {
	if senderID <= 0 || receiverID <= 0 || conversationID <= 0 || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidMessage
	}

	var stored *domain.Message
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetConversation(ctx, tx, conversationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConversationNotFound
			}
			return err
		}
		m, err := repo.CreateMessage(ctx, tx, senderID, receiverID, conversationID, content, imageURL)
		if err != nil {
			return err
		}
		stored = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
