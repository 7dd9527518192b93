// Handler wiring.
//
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate service errors into HTTP results. Service
// dependencies are expressed as interfaces so transport concerns stay
// separate from business logic and handler tests can stub them.
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/domain"
	"github.com/petmatch/petmatch-server/internal/match"
	"github.com/petmatch/petmatch-server/internal/repo"
	"github.com/petmatch/petmatch-server/internal/services"
)

// MatchService defines the matchmaking read operations consumed by HTTP
// handlers. Implementations must honor the provided context.
type MatchService interface {
	// Compatibility scores one pet against every other pet.
	Compatibility(ctx context.Context, petID int64) (*services.CompatibilityResult, error)
	// Matches returns the full matchmaking table.
	Matches(ctx context.Context) ([]match.PetMatches, error)
}

// ChatService defines conversation and message operations.
type ChatService interface {
	// StartConversation idempotently creates/returns the pair's conversation.
	StartConversation(ctx context.Context, userA, userB int64) (*domain.Conversation, error)
	// ListConversations returns all conversations the user participates in.
	ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error)
	// ListMessages returns a conversation's messages oldest first.
	ListMessages(ctx context.Context, conversationID int64) ([]domain.Message, error)
	// SendMessage persists one message and returns the stored row.
	SendMessage(ctx context.Context, senderID, receiverID, conversationID int64, content string, imageURL *string) (*domain.Message, error)
}

// SettingsService defines the messaging-settings operations.
type SettingsService interface {
	// Get returns the caller's notification flags.
	Get(ctx context.Context, userID int64) (*repo.MessagingSettings, error)
	// Update partially updates the caller's notification flags.
	Update(ctx context.Context, userID int64, chat, email *bool) (*repo.MessagingSettings, error)
}

// FeedbackService defines the feedback form operations.
type FeedbackService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

// ReportService defines the aggregate reporting operation.
type ReportService interface {
	Totals(ctx context.Context) (*repo.Totals, error)
}

// Handlers groups the HTTP endpoints and their service dependencies.
type Handlers struct {
	matchSvc    MatchService
	chatSvc     ChatService
	settingsSvc SettingsService
	fbSvc       FeedbackService
	reportSvc   ReportService
}

// New constructs a Handlers instance bound to the given services.
func New(matchSvc MatchService, chatSvc ChatService, settingsSvc SettingsService, fbSvc FeedbackService, reportSvc ReportService) *Handlers {
	return &Handlers{
		matchSvc:    matchSvc,
		chatSvc:     chatSvc,
		settingsSvc: settingsSvc,
		fbSvc:       fbSvc,
		reportSvc:   reportSvc,
	}
}

// pathID parses the named path parameter as a positive integer id.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
