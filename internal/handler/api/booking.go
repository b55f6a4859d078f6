package api

import (
	"errors"
	"net/http"

	reqdto "cinepass/internal/handler/dto/request"
	resdto "cinepass/internal/handler/dto/response"
	"cinepass/internal/handler/httperr"
	"cinepass/internal/handler/middleware"
	"cinepass/internal/usecase/commands"
	"cinepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Confirm booking
// @Description Convert a hold into a booking after charging the payment token
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Param request body reqdto.ConfirmBookingRequest true "Payment token"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /holds/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	holdID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold ID format", nil)
		return
	}

	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	newBooking, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), holdID, customerID, req.PaymentToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
		case errors.Is(err, commands.ErrHoldExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Hold has expired", nil)
		case errors.Is(err, commands.ErrHoldOwnerMismatch):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Hold belongs to another customer", nil)
		case errors.Is(err, commands.ErrPaymentNotConfirmed):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was not confirmed", nil)
		case errors.Is(err, commands.ErrSeatUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "One or more seats are no longer available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(newBooking))
}

// @Summary Get booking
// @Description Get one of the current customer's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id, customerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings of the current customer, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListCustomerBookings(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i := range items {
		response[i] = resdto.FromBookingListItem(&items[i])
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking more than two hours before the showtime
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	cancelled, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, customerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrCancellationWindowClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cancellation window has closed", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already cancelled", nil)
		case errors.Is(err, commands.ErrAlreadyCompleted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}
