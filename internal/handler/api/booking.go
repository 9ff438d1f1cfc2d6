package api

import (
	"errors"
	"net/http"

	reqdto "venue-booking-api/internal/handler/dto/request"
	resdto "venue-booking-api/internal/handler/dto/response"
	"venue-booking-api/internal/handler/httperr"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Finalize booking
// @Description Convert an active hold into a confirmed booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.FinalizeBookingRequest true "Finalize request"
// @Success 201 {object} resdto.FinalizeBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/finalize [post]
func (h *BookingHandler) FinalizeBooking(c *gin.Context) {
	var req reqdto.FinalizeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Finalize(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
		case errors.Is(err, commands.ErrHoldNotActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hold has expired or is no longer active", nil)
		case errors.Is(err, commands.ErrInvalidCustomer):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer details", nil)
		case errors.Is(err, commands.ErrBoothIntegrity):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booth referenced by hold no longer exists", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflict", infra.ErrDetail(err))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FinalizeBookingResponse{
		Success:   result.Success,
		BookingID: result.BookingID,
	})
}
