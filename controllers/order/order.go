package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/middleware"
	"github.com/NAdun-bit/rasa-storefront-api/models"
	"github.com/NAdun-bit/rasa-storefront-api/orders"
	"github.com/NAdun-bit/rasa-storefront-api/services"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

// GET /orders
//
// The session's durable mirror is the primary history; in-memory orders
// from this process fill in anything not yet mirrored.
func GetHistory(submission *orders.Submission, sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		mirrored, err := sessions.Orders(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read order history"})
			return
		}

		seen := make(map[string]bool, len(mirrored))
		for _, order := range mirrored {
			seen[order.OrderID] = true
		}

		merged := make([]models.SubmittedOrder, 0, len(mirrored))
		for _, order := range submission.Recent(sessionID) {
			if !seen[order.OrderID] {
				merged = append(merged, order)
			}
		}
		merged = append(merged, mirrored...)

		c.JSON(http.StatusOK, gin.H{"orders": merged})
	}
}

// GET /orders/remote
//
// Pulls the backend's view of the user's orders; needs a verified token.
func GetRemoteOrders(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.IsGuest(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to view your orders"})
			return
		}

		records, err := authService.GetUserOrders(c.Request.Context(), middleware.AuthToken(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": records})
	}
}

// GET /orders/:order_id
//
// Looks up a single order by either the local correlation id or the
// backend id, falling back to the remote service.
func GetOrder(submission *orders.Submission, orderAPI *services.OrderAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		for _, order := range submission.Recent(middleware.SessionID(c)) {
			if order.OrderID == orderID || order.BackendID == orderID {
				c.JSON(http.StatusOK, order)
				return
			}
		}

		record, err := orderAPI.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}
