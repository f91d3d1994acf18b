package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Guest tokens let a visitor browse and fill a basket without logging in.
// They identify a session only; checkout still requires OTP auth.

const guestTokenTTL = 24 * time.Hour

// NewGuestID returns a fresh guest session identifier.
func NewGuestID() string {
	return "guest_" + generateRandomString(16)
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

// IssueGuestToken signs a short-lived JWT for the guest session.
func IssueGuestToken(secret, guestID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": guestID,
		"role":       "guest",
		"exp":        time.Now().Add(guestTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseGuestToken returns the session id from a locally issued guest token.
// Any parse failure means the bearer is not one of ours.
func ParseGuestToken(secret, tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return "", false
	}
	return sessionID, true
}
