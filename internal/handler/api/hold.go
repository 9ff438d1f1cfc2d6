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

type HoldHandler struct {
	holdCommands commands.HoldCommands
}

func NewHoldHandler(holdCommands commands.HoldCommands) *HoldHandler {
	return &HoldHandler{
		holdCommands: holdCommands,
	}
}

// @Summary Create hold
// @Description Place a temporary hold on a booth time slot
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.holdCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidHoldInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold input", nil)
		case errors.Is(err, commands.ErrBoothNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booth not found", nil)
		case errors.Is(err, commands.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot unavailable", infra.ErrDetail(err))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHold(entity))
}

// @Summary Extend hold
// @Description Reset the expiry of an active hold owned by the session
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.ExtendHoldRequest true "Extend request"
// @Success 200 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Router /holds/extend [post]
func (h *HoldHandler) ExtendHold(c *gin.Context) {
	var req reqdto.ExtendHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.holdCommands.Extend(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldNotExtendable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hold not found, expired, or not owned by this session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHold(entity))
}

// @Summary Release hold
// @Description Voluntarily release a hold owned by the session
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.ReleaseHoldRequest true "Release request"
// @Success 200 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Router /holds/release [post]
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	var req reqdto.ReleaseHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.holdCommands.Release(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHoldNotReleasable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Hold not found, already inactive, or not owned by this session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHold(entity))
}
