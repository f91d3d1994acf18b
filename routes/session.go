package routes

import (
	"github.com/gin-gonic/gin"

	sessionControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/session"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
)

func SetupSessionRoutes(r *gin.Engine, deps Deps) {
	sessionRoutes := r.Group("/session", middleware.SessionAuth(deps.JWTSecret))
	{
		sessionRoutes.GET("/dark-mode", sessionControllers.GetDarkMode(deps.Sessions))
		sessionRoutes.PUT("/dark-mode", sessionControllers.SetDarkMode(deps.Sessions))
		sessionRoutes.GET("/location", sessionControllers.GetLocation(deps.Locations))
		sessionRoutes.PUT("/location", sessionControllers.SetLocation(deps.Locations))
	}
}
