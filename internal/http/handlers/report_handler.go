// Reports HTTP handler.
//
//   - GET /reports  (aggregate user/pet/match counts)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetReports godoc
// @ID          getReports
// @Summary     Aggregate counts for the dashboard
// @Tags        Reports
// @Produce     json
// @Success     200  {object}  repo.Totals
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /reports [get]
func (h *Handlers) GetReports(c *gin.Context) {
	totals, err := h.reportSvc.Totals(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, totals)
}
