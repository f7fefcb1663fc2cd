package handlers

import (
	"errors"
	"net/http"

	"taly/models"
	"taly/services/calendar"
	"taly/services/user"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateProfileHandler replaces the authenticated user's bio.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateProfile(c.Request.Context(), userID.(string), req.Bio); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetTimeIntervalsHandler replaces the authenticated user's weekly
// availability with the submitted set of enabled intervals.
func (h *UserHandler) SetTimeIntervalsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SetTimeIntervalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.SetTimeIntervals(c.Request.Context(), userID.(string), req.Intervals); err != nil {
		var validation *calendar.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
			return
		}
		logger.Error("Failed to set time intervals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set time intervals"})
		return
	}

	c.Status(http.StatusCreated)
}
