package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/cart"
	"github.com/NAdun-bit/rasa-storefront-api/checkout"
	"github.com/NAdun-bit/rasa-storefront-api/location"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
	"github.com/NAdun-bit/rasa-storefront-api/models"
	"github.com/NAdun-bit/rasa-storefront-api/orders"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

// GET /checkout
func GetState(flows *checkout.Manager, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		flow := flows.Flow(sessionID)
		c.JSON(http.StatusOK, gin.H{
			"step":       flow.Step(),
			"draft":      flow.Draft(),
			"processing": flow.Processing(),
			"totals":     carts.Cart(sessionID).Totals(),
		})
	}
}

// POST /checkout/details
func BeginDetails(flows *checkout.Manager, carts *cart.Manager, sessions *session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		token, err := sessions.AuthToken(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
			return
		}

		flow := flows.Flow(sessionID)
		err = flow.BeginDetails(token != "", carts.Cart(sessionID).Len())
		switch {
		case errors.Is(err, checkout.ErrLoginRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		case err != nil:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"step": flow.Step()})
		}
	}
}

// PUT /checkout/details
func SubmitDetails(flows *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.OrderDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		flow := flows.Flow(middleware.SessionID(c))
		err := flow.SubmitDetails(draft)
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Fields})
		case err != nil:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"step": flow.Step()})
		}
	}
}

// POST /checkout/back
func Back(flows *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow := flows.Flow(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"step": flow.Back(), "draft": flow.Draft()})
	}
}

// POST /checkout/reset
func Reset(flows *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		flows.Reset(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"step": checkout.StepCart})
	}
}

type placeOrderInput struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
	Card          models.CardDetails   `json:"card"`
}

// POST /checkout/place-order
//
// The remote order creation must succeed before any local state is touched.
// On failure the cart, draft and flow all stay as they were so the user can
// retry.
func PlaceOrder(
	flows *checkout.Manager,
	carts *cart.Manager,
	sessions *session.Sessions,
	locations *location.Context,
	submission *orders.Submission,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input placeOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		flow := flows.Flow(sessionID)
		basket := carts.Cart(sessionID)

		// One snapshot feeds both the gate and the payload, so the order
		// cannot submit items and totals that disagree.
		snapshot := basket.Snapshot()

		err := flow.BeginSubmission(input.PaymentMethod, input.Card, len(snapshot.Entries))
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Fields})
			return
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		case errors.Is(err, checkout.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Your order is already being processed"})
			return
		case err != nil:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		token, _ := sessions.AuthToken(ctx, sessionID)
		profile, _ := sessions.UserData(ctx, sessionID)

		order, err := submission.Submit(ctx, orders.SubmitRequest{
			SessionID:     sessionID,
			Entries:       snapshot.Entries,
			Totals:        snapshot.Totals,
			ServiceType:   snapshot.ServiceType,
			PaymentMethod: input.PaymentMethod,
			Draft:         flow.Draft(),
			Profile:       profile,
			AuthToken:     token,
			LocationAddr:  locations.Selected(sessionID).Address,
		})
		if err != nil {
			flow.FinishSubmission(false)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order, please try again"})
			return
		}

		flow.FinishSubmission(true)
		basket.Clear()
		c.JSON(http.StatusCreated, order)
	}
}
