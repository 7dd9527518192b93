// Conversation HTTP handlers.
//
// This file exposes the REST endpoints for conversations:
//   - GET  /conversations/{user_id}  (list a user's conversations)
//   - POST /conversations            (idempotent create)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/services"
)

// CreateConversationRequest is the JSON payload for starting a conversation.
type CreateConversationRequest struct {
	User1ID int64 `json:"user1_id" binding:"required,gt=0" example:"7"`
	User2ID int64 `json:"user2_id" binding:"required,gt=0" example:"12"`
}

// ListConversations godoc
// @ID          listConversations
// @Summary     List a user's conversations
// @Tags        Conversations
// @Produce     json
// @Param       user_id  path  int  true  "User ID"
// @Success     200  {array}   domain.Conversation
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /conversations/{user_id} [get]
func (h *Handlers) ListConversations(c *gin.Context) {
	userID, okID := pathID(c, "user_id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid user ID, must be a number")
		return
	}

	rows, err := h.chatSvc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rows)
}

// CreateConversation godoc
// @ID          createConversation
// @Summary     Start (or fetch) the conversation between two users
// @Description Idempotent: the same unordered pair always maps to one row.
// @Tags        Conversations
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateConversationRequest  true  "User pair"
// @Success     200  {object}  domain.Conversation
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /conversations [post]
func (h *Handlers) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user1_id and user2_id are required")
		return
	}

	conv, err := h.chatSvc.StartConversation(c.Request.Context(), req.User1ID, req.User2ID)
	if err != nil {
		if err == services.ErrInvalidMessage {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user ids must be distinct and positive")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, conv)
}
