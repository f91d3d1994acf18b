package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/checkout"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
)

func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	checkoutRoutes := r.Group("/checkout", middleware.SessionAuth(deps.JWTSecret))
	{
		checkoutRoutes.GET("/", checkoutControllers.GetState(deps.Checkouts, deps.Carts))
		checkoutRoutes.POST("/details", checkoutControllers.BeginDetails(deps.Checkouts, deps.Carts, deps.Sessions))
		checkoutRoutes.PUT("/details", checkoutControllers.SubmitDetails(deps.Checkouts))
		checkoutRoutes.POST("/back", checkoutControllers.Back(deps.Checkouts))
		checkoutRoutes.POST("/reset", checkoutControllers.Reset(deps.Checkouts))
		checkoutRoutes.POST("/place-order", checkoutControllers.PlaceOrder(
			deps.Checkouts, deps.Carts, deps.Sessions, deps.Locations, deps.Submission,
		))
	}
}
