package api

import (
	"errors"
	"net/http"

	resdto "venue-booking-api/internal/handler/dto/response"
	"venue-booking-api/internal/handler/httperr"
	"venue-booking-api/internal/usecase/commands"
	"venue-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the staff dashboard: inspecting holds for a booth,
// force-releasing stuck ones, and listing the day's bookings.
type AdminHandler struct {
	holdCommands   commands.HoldCommands
	holdQueries    queries.HoldQueries
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(
	holdCommands commands.HoldCommands,
	holdQueries queries.HoldQueries,
	bookingQueries queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		holdCommands:   holdCommands,
		holdQueries:    holdQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary List holds
// @Description List all holds for a booth on a date, including expired ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param boothId query string true "Booth ID"
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Success 200 {array} resdto.HoldListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/holds [get]
func (h *AdminHandler) ListHolds(c *gin.Context) {
	boothID, err := uuid.Parse(c.Query("boothId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booth ID format",
		})
		return
	}

	views, err := h.holdQueries.ListHolds(c.Request.Context(), boothID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidQueryDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.HoldListItemResponse, 0, len(views))
	for _, v := range views {
		item, convErr := resdto.FromHoldView(v)
		if convErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, convErr, "Internal server error", nil)
			return
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Force-release hold
// @Description Release a hold regardless of owning session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /admin/holds/{id}/release [post]
func (h *AdminHandler) ForceReleaseHold(c *gin.Context) {
	holdID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hold ID format",
		})
		return
	}

	entity, err := h.holdCommands.ForceRelease(c.Request.Context(), holdID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldNotReleasable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hold not found or already inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHold(entity))
}

// @Summary List bookings
// @Description List confirmed bookings for a venue on a date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param venue query string true "Venue slug"
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	venue := c.Query("venue")
	if venue == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "venue query parameter is required",
		})
		return
	}

	views, err := h.bookingQueries.ListBookings(c.Request.Context(), venue, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidQueryDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.BookingResponse, 0, len(views))
	for _, v := range views {
		item, convErr := resdto.FromBookingView(v)
		if convErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, convErr, "Internal server error", nil)
			return
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get a confirmed booking by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}
