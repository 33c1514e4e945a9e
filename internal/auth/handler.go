package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "sessionId"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /auth/login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		RegistrationID string `json:"registrationId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.RegistrationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		result.SessionID,
		int(h.service.SessionTTL().Seconds()),
		"/",
		"",
		false,
		true,
	)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"success":    true,
		"message":    "logged in",
		"restaurant": result.Restaurant,
	})
}

// --------------------------------------------------
// POST /auth/logout
// --------------------------------------------------
func (h *Handler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "logged out",
	})
}
