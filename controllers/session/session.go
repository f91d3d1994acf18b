package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/location"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

// GET /session/dark-mode
func GetDarkMode(sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		enabled, err := sessions.DarkMode(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"darkMode": enabled})
	}
}

type darkModeInput struct {
	DarkMode bool `json:"darkMode"`
}

// PUT /session/dark-mode
func SetDarkMode(sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input darkModeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := sessions.SetDarkMode(c.Request.Context(), middleware.SessionID(c), input.DarkMode); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"darkMode": input.DarkMode})
	}
}

// GET /session/location
func GetLocation(locations *location.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, locations.Selected(middleware.SessionID(c)))
	}
}

// PUT /session/location
func SetLocation(locations *location.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var loc location.Location
		if err := c.ShouldBindJSON(&loc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if loc.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required"})
			return
		}

		locations.Update(middleware.SessionID(c), loc)
		c.JSON(http.StatusOK, loc)
	}
}
