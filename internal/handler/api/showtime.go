package api

import (
	"errors"
	"net/http"

	reqdto "cinepass/internal/handler/dto/request"
	resdto "cinepass/internal/handler/dto/response"
	"cinepass/internal/handler/httperr"
	"cinepass/internal/usecase/commands"
	"cinepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShowtimeHandler struct {
	showtimeCommands commands.ShowtimeCommands
	seatQueries      queries.SeatQueries
}

func NewShowtimeHandler(showtimeCommands commands.ShowtimeCommands, seatQueries queries.SeatQueries) *ShowtimeHandler {
	return &ShowtimeHandler{
		showtimeCommands: showtimeCommands,
		seatQueries:      seatQueries,
	}
}

// @Summary Register showtime
// @Description Register a screening pushed by the catalog and generate its seat map
// @Tags showtimes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterShowtimeRequest true "Showtime registration"
// @Success 201 {object} resdto.ShowtimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /showtimes [post]
func (h *ShowtimeHandler) RegisterShowtime(c *gin.Context) {
	var req reqdto.RegisterShowtimeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	showtime, err := h.showtimeCommands.RegisterShowtime(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShowtimeExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Showtime already registered", nil)
		case errors.Is(err, commands.ErrShowtimeInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Showtime starts in the past", nil)
		case errors.Is(err, commands.ErrInvalidSeatMap):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity or screen type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromShowtime(showtime))
}

// @Summary Get showtime
// @Description Get showtime metadata by ID
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {object} resdto.ShowtimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /showtimes/{id} [get]
func (h *ShowtimeHandler) GetShowtime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid showtime ID format", nil)
		return
	}

	view, err := h.seatQueries.GetShowtime(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Showtime not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShowtimeView(view))
}

// @Summary List seats
// @Description List the full seat map of a showtime with live statuses
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /showtimes/{id}/seats [get]
func (h *ShowtimeHandler) ListSeats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid showtime ID format", nil)
		return
	}

	seats, err := h.seatQueries.ListSeats(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrShowtimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Showtime not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]resdto.SeatResponse, len(seats))
	for i, seat := range seats {
		response[i] = resdto.FromSeatView(seat)
	}

	c.JSON(http.StatusOK, response)
}
