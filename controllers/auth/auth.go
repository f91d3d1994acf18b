package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/auth"
	"github.com/NAdun-bit/rasa-storefront-api/cart"
	"github.com/NAdun-bit/rasa-storefront-api/checkout"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

// POST /auth/guest
//
// Unauthenticated; bootstraps a browsing session before login.
func GuestToken(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := auth.NewGuestID()
		token, err := auth.IssueGuestToken(jwtSecret, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "sessionId": guestID})
	}
}

type phoneInput struct {
	PhoneNumber string `json:"phoneNumber"`
}

// POST /auth/send-otp
func SendOTP(flows *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input phoneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		flow := flows.Flow(middleware.SessionID(c))
		err := flow.SubmitPhone(c.Request.Context(), input.PhoneNumber)
		var validationErr *auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send OTP"})
		default:
			c.JSON(http.StatusOK, gin.H{
				"step":          flow.Step(),
				"resendSeconds": int(flow.ResendRemaining().Seconds()),
			})
		}
	}
}

type otpInput struct {
	OTP string `json:"otp"`
}

// POST /auth/verify-otp
func VerifyOTP(flows *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input otpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		step, err := flows.Flow(sessionID).VerifyCode(c.Request.Context(), sessionID, input.OTP)
		var validationErr *auth.ValidationError
		var authErr *auth.AuthError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "step": step})
		case errors.As(err, &authErr):
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message, "step": step})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		default:
			c.JSON(http.StatusOK, gin.H{"step": step})
		}
	}
}

// PUT /auth/profile
func SubmitProfile(flows *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form auth.ProfileForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		flow := flows.Flow(sessionID)
		err := flow.SubmitProfile(c.Request.Context(), sessionID, form)
		var validationErr *auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save profile"})
		default:
			c.JSON(http.StatusOK, gin.H{"step": flow.Step()})
		}
	}
}

// GET /auth/profile
func GetProfile(sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := sessions.UserData(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// POST /auth/skip
func Skip(flows *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		step := flows.Flow(middleware.SessionID(c)).Skip()
		c.JSON(http.StatusOK, gin.H{"step": step})
	}
}

// GET /auth/state
func GetState(flows *auth.Manager, sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		flow := flows.Flow(sessionID)
		token, err := sessions.AuthToken(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"step":          flow.Step(),
			"authenticated": token != "",
			"resendSeconds": int(flow.ResendRemaining().Seconds()),
		})
	}
}

// POST /auth/logout
//
// Tears down auth state and the basket. Dark mode and the order history
// mirror survive.
func Logout(flows *auth.Manager, carts *cart.Manager, checkouts *checkout.Manager, sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		if err := sessions.ClearAuth(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		flows.Drop(sessionID)
		carts.Drop(sessionID)
		checkouts.Reset(sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
