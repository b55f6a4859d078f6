package api

import (
	"errors"
	"net/http"

	reqdto "cinepass/internal/handler/dto/request"
	resdto "cinepass/internal/handler/dto/response"
	"cinepass/internal/handler/httperr"
	"cinepass/internal/handler/middleware"
	"cinepass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HoldHandler struct {
	holdCommands commands.HoldCommands
}

func NewHoldHandler(holdCommands commands.HoldCommands) *HoldHandler {
	return &HoldHandler{
		holdCommands: holdCommands,
	}
}

// @Summary Create hold
// @Description Reserve up to eight free seats of a showtime for a limited time
// @Tags holds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Showtime ID"
// @Param request body reqdto.CreateHoldRequest true "Seat selection"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /showtimes/{id}/holds [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	showtimeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid showtime ID format", nil)
		return
	}

	var req reqdto.CreateHoldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	newHold, err := h.holdCommands.CreateHold(c.Request.Context(), showtimeID, customerID, req.SeatIDs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Showtime not found", nil)
		case errors.Is(err, commands.ErrSeatNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Seat not found for showtime", nil)
		case errors.Is(err, commands.ErrSeatUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "One or more seats are no longer available", nil)
		case errors.Is(err, commands.ErrEmptySelection),
			errors.Is(err, commands.ErrTooManySeats),
			errors.Is(err, commands.ErrDuplicateSeat):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat selection", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHold(newHold))
}

// @Summary Release hold
// @Description Release a hold and free its seats; releasing a gone hold succeeds
// @Tags holds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /holds/{id} [delete]
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold ID format", nil)
		return
	}

	if err := h.holdCommands.ReleaseHold(c.Request.Context(), id, customerID); err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldOwnerMismatch):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Hold belongs to another customer", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
