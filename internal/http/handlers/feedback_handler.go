// Feedback HTTP handlers.
//
// This file exposes the public feedback form endpoints:
//   - POST /feedback  (submit, 201)
//   - GET  /feedback  (all entries, newest first)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/services"
)

// SubmitFeedbackRequest is the JSON payload of the feedback form.
type SubmitFeedbackRequest struct {
	Name    string `json:"name" binding:"required" example:"Dana"`
	Email   string `json:"email" binding:"required" example:"dana@example.com"`
	Message string `json:"message" binding:"required" example:"Matched my corgi in a week!"`
}

// SubmitFeedbackResponse wraps the stored row with a confirmation message.
type SubmitFeedbackResponse struct {
	Message  string `json:"message"`
	Feedback any    `json:"feedback"`
}

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Submit feedback
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SubmitFeedbackRequest  true  "Feedback payload"
// @Success     201  {object}  handlers.SubmitFeedbackResponse
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /feedback [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "all fields are required")
		return
	}

	fb, err := h.fbSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if err == services.ErrInvalidFeedback {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, SubmitFeedbackResponse{
		Message:  "feedback submitted successfully",
		Feedback: fb,
	})
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List all feedback, newest first
// @Tags        Feedback
// @Produce     json
// @Success     200  {array}   domain.Feedback
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	rows, err := h.fbSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rows)
}
