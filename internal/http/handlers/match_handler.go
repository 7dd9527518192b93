// Matchmaking HTTP handlers.
//
// This file exposes the REST endpoints for the matchmaking surface:
//   - GET /pets/compatibility/{pet_id}  (per-pet compatibility breakdown)
//   - GET /matches                      (full matchmaking table)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/services"
)

// CompatibilityResponse is the payload of GET /pets/compatibility/{pet_id}.
type CompatibilityResponse struct {
	Message              string `json:"message"`
	Pet                  any    `json:"pet"`
	CompatibilityResults any    `json:"compatibilityResults"`
}

// GetPetCompatibility godoc
// @ID          getPetCompatibility
// @Summary     Score one pet against every other pet
// @Description Returns the four-score compatibility breakdown per candidate. Unscorable pairs are skipped.
// @Tags        Matchmaking
// @Produce     json
// @Param       pet_id  path  int  true  "Pet ID"
// @Success     200  {object}  handlers.CompatibilityResponse
// @Failure     400  {object}  handlers.ErrorResponse "Non-numeric pet id"
// @Failure     404  {object}  handlers.ErrorResponse "Pet not found"
// @Failure     500  {object}  handlers.ErrorResponse "Pet record incomplete"
// @Router      /pets/compatibility/{pet_id} [get]
func (h *Handlers) GetPetCompatibility(c *gin.Context) {
	petID, okID := pathID(c, "pet_id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pet ID, must be a number")
		return
	}

	res, err := h.matchSvc.Compatibility(c.Request.Context(), petID)
	if err != nil {
		switch err {
		case services.ErrPetNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case services.ErrPetIncomplete:
			fail(c, http.StatusInternalServerError, ErrCodeIncompletePet, "pet data is incomplete")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	msg := "pet compatibility fetched successfully"
	if len(res.Results) == 0 {
		msg = "no other pets available for compatibility check"
	}
	ok(c, http.StatusOK, CompatibilityResponse{
		Message:              msg,
		Pet:                  res.Pet,
		CompatibilityResults: res.Results,
	})
}

// GetMatches godoc
// @ID          getMatches
// @Summary     Full matchmaking table
// @Description One row per pet with its candidate matches; primary same-breed candidates, per-pet fallback when none exist.
// @Tags        Matchmaking
// @Produce     json
// @Success     200  {array}   match.PetMatches
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /matches [get]
func (h *Handlers) GetMatches(c *gin.Context) {
	rows, err := h.matchSvc.Matches(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rows)
}
