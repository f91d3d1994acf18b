package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/cart"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
)

func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartRoutes := r.Group("/cart", middleware.SessionAuth(deps.JWTSecret))
	{
		cartRoutes.GET("/", cartControllers.GetCart(deps.Carts))
		cartRoutes.POST("/items", cartControllers.AddItem(deps.Carts))
		cartRoutes.DELETE("/items/:entry_id", cartControllers.RemoveItem(deps.Carts))
		cartRoutes.DELETE("/", cartControllers.ClearCart(deps.Carts))
		cartRoutes.PUT("/service-type", cartControllers.SetServiceType(deps.Carts))
	}
}
