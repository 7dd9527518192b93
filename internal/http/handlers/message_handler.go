// Message HTTP handlers.
//
// This file exposes the REST endpoints for chat messages:
//   - GET  /messages/{conversation_id}  (ordered history)
//   - POST /messages                    (send)
//
// The realtime relay shares the same service path, so a message sent over
// either transport lands in the same store with the same semantics.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/services"
)

// SendMessageRequest is the JSON payload for sending a message.
type SendMessageRequest struct {
	SenderID       int64   `json:"sender_id" binding:"required,gt=0" example:"7"`
	ReceiverID     int64   `json:"receiver_id" binding:"required,gt=0" example:"12"`
	ConversationID int64   `json:"conversation_id" binding:"required,gt=0" example:"3"`
	Content        string  `json:"content" binding:"required" example:"Is Rex free on Saturday?"`
	ImageURL       *string `json:"image_url,omitempty"`
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List a conversation's messages, oldest first
// @Tags        Messages
// @Produce     json
// @Param       conversation_id  path  int  true  "Conversation ID"
// @Success     200  {array}   domain.Message
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /messages/{conversation_id} [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	conversationID, okID := pathID(c, "conversation_id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid conversation ID, must be a number")
		return
	}

	rows, err := h.chatSvc.ListMessages(c.Request.Context(), conversationID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rows)
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a chat message
// @Description Persists one message transactionally and returns the stored row with its assigned id and timestamp.
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SendMessageRequest  true  "Message payload"
// @Success     200  {object}  domain.Message
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse "Conversation not found"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sender_id, receiver_id, conversation_id and content are required")
		return
	}

	msg, err := h.chatSvc.SendMessage(c.Request.Context(), req.SenderID, req.ReceiverID, req.ConversationID, req.Content, req.ImageURL)
	if err != nil {
		switch err {
		case services.ErrInvalidMessage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid message payload")
		case services.ErrConversationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "conversation not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, msg)
}
