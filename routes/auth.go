package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/auth"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
)

func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	// Guest bootstrap is the only route reachable without a token.
	r.POST("/auth/guest", authControllers.GuestToken(deps.JWTSecret))

	authRoutes := r.Group("/auth", middleware.SessionAuth(deps.JWTSecret))
	{
		authRoutes.POST("/send-otp", authControllers.SendOTP(deps.AuthFlows))
		authRoutes.POST("/verify-otp", authControllers.VerifyOTP(deps.AuthFlows))
		authRoutes.POST("/skip", authControllers.Skip(deps.AuthFlows))
		authRoutes.GET("/state", authControllers.GetState(deps.AuthFlows, deps.Sessions))
		authRoutes.GET("/profile", authControllers.GetProfile(deps.Sessions))
		authRoutes.PUT("/profile", authControllers.SubmitProfile(deps.AuthFlows))
		authRoutes.POST("/logout", authControllers.Logout(deps.AuthFlows, deps.Carts, deps.Checkouts, deps.Sessions))
	}
}
