package handlers

import (
	"errors"
	"net/http"
	"strings"

	"taly/services/auth"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the Google OAuth endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// GoogleLoginHandler starts the OAuth flow. The optional userId query param
// carries a pre-auth username claim; connect=calendar additionally requests
// calendar read access.
func (h *AuthHandler) GoogleLoginHandler(c *gin.Context) {
	claimedUserID := c.Query("userId")
	connectCalendar := c.Query("connect") == "calendar"

	url, err := h.Service.BeginAuth(c.Request.Context(), claimedUserID, connectCalendar)
	if err != nil {
		utils.GetLogger().Error("Failed to begin auth", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallbackHandler completes the OAuth flow and returns the session.
func (h *AuthHandler) GoogleCallbackHandler(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state and code query params are required"})
		return
	}

	resp, err := h.Service.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidState):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired sign-in attempt"})
		case errors.Is(err, auth.ErrUnclaimedSignIn):
			c.JSON(http.StatusConflict, gin.H{"error": "Claim a username before signing in"})
		default:
			utils.GetLogger().Error("OAuth callback failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the caller's session.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	if err := h.Service.SignOut(c.Request.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			return
		}
		utils.GetLogger().Error("Failed to sign out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.Status(http.StatusNoContent)
}
