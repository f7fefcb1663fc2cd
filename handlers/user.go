package handlers

import (
	"errors"
	"net/http"

	"taly/models"
	"taly/services/user"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration and public profile endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// ClaimUsernameHandler reserves a public booking handle.
func (h *UserHandler) ClaimUsernameHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ClaimUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	claimed, err := h.Service.ClaimUsername(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		case errors.Is(err, user.ErrInvalidUsername):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to claim username", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim username"})
		}
		return
	}

	c.JSON(http.StatusCreated, claimed)
}

// GetUserHandler returns the public profile behind a booking page.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.Service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
