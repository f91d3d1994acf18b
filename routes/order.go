package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/order"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orderRoutes := r.Group("/orders", middleware.SessionAuth(deps.JWTSecret))
	{
		orderRoutes.GET("/", orderControllers.GetHistory(deps.Submission, deps.Sessions))
		orderRoutes.GET("/remote", orderControllers.GetRemoteOrders(deps.AuthService))
		orderRoutes.GET("/:order_id", orderControllers.GetOrder(deps.Submission, deps.OrderAPI))
	}
}
