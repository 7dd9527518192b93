// Messaging-settings HTTP handlers.
//
// This file exposes the per-user notification preference endpoints:
//   - GET /messaging-settings  (read)
//   - PUT /messaging-settings  (partial update)
//
// The user identity always comes from the verified bearer token; there is no
// way to address another user's settings.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/http/middleware"
	"github.com/petmatch/petmatch-server/internal/services"
)

// UpdateSettingsRequest is the JSON payload for the partial settings update.
// A nil field leaves the stored value unchanged.
type UpdateSettingsRequest struct {
	ChatNotifications  *bool `json:"chat_notifications,omitempty" example:"true"`
	EmailNotifications *bool `json:"email_notifications,omitempty" example:"false"`
}

// GetMessagingSettings godoc
// @ID          getMessagingSettings
// @Summary     Read the caller's messaging settings
// @Tags        Settings
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  repo.MessagingSettings
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse "User not found"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /messaging-settings [get]
func (h *Handlers) GetMessagingSettings(c *gin.Context) {
	userID := middleware.UserIDFrom(c)

	settings, err := h.settingsSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, settings)
}

// UpdateMessagingSettings godoc
// @ID          updateMessagingSettings
// @Summary     Partially update the caller's messaging settings
// @Description Omitted fields keep their stored value.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.UpdateSettingsRequest  true  "Partial settings"
// @Success     200  {object}  repo.MessagingSettings
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse "User not found"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /messaging-settings [put]
func (h *Handlers) UpdateMessagingSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	userID := middleware.UserIDFrom(c)
	settings, err := h.settingsSvc.Update(c.Request.Context(), userID, req.ChatNotifications, req.EmailNotifications)
	if err != nil {
		if err == services.ErrUserNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, settings)
}
