package handlers

import (
	"errors"
	"net/http"
	"time"

	"taly/models"
	"taly/services/booking"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the visitor-facing booking confirmation endpoint.
type BookingHandler struct {
	Service booking.SchedulingService
}

func NewBookingHandler(svc booking.SchedulingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ConfirmSchedulingHandler books the chosen date/time for a visitor.
func (h *BookingHandler) ConfirmSchedulingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	username := c.Param("username")

	var req models.ConfirmSchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	scheduling, err := h.Service.ConfirmScheduling(c.Request.Context(), username, req, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, booking.ErrNameTooShort),
			errors.Is(err, booking.ErrInvalidEmail),
			errors.Is(err, booking.ErrPastDate),
			errors.Is(err, booking.ErrOutsideAvailability):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to confirm scheduling", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm scheduling"})
		}
		return
	}

	c.JSON(http.StatusCreated, scheduling)
}
