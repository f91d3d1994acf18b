package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/auth"
	"github.com/NAdun-bit/rasa-storefront-api/cart"
	"github.com/NAdun-bit/rasa-storefront-api/checkout"
	"github.com/NAdun-bit/rasa-storefront-api/location"
	"github.com/NAdun-bit/rasa-storefront-api/orders"
	"github.com/NAdun-bit/rasa-storefront-api/services"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

// Deps carries everything the route groups need.
type Deps struct {
	JWTSecret string

	Carts      *cart.Manager
	Checkouts  *checkout.Manager
	AuthFlows  *auth.Manager
	Locations  *location.Context
	Sessions   *session.Sessions
	Submission *orders.Submission

	AuthService *services.AuthService
	OrderAPI    *services.OrderAPI
	ProductAPI  *services.ProductAPI
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public routes (no session required)
	SetupAuthRoutes(r, deps)
	SetupProductRoutes(r, deps)

	// Session-scoped routes (bearer token required)
	SetupCartRoutes(r, deps)
	SetupCheckoutRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupSessionRoutes(r, deps)
}
