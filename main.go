package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/auth"
	"github.com/NAdun-bit/rasa-storefront-api/cart"
	"github.com/NAdun-bit/rasa-storefront-api/checkout"
	"github.com/NAdun-bit/rasa-storefront-api/config"
	"github.com/NAdun-bit/rasa-storefront-api/events"
	"github.com/NAdun-bit/rasa-storefront-api/location"
	"github.com/NAdun-bit/rasa-storefront-api/orders"
	"github.com/NAdun-bit/rasa-storefront-api/routes"
	"github.com/NAdun-bit/rasa-storefront-api/services"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

func main() {
	log.Println("✅ Starting storefront API...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Remote service clients
	productAPI := services.NewProductAPI(cfg.Remotes)
	orderAPI := services.NewOrderAPI(cfg.Remotes)
	authService := services.NewAuthService(cfg.Remotes)

	// Durable per-session state
	sessions := session.NewSessions(session.NewRedisStore(cfg.Redis))

	// Order events are best effort; a missing broker must not stop the app.
	publisher, err := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Printf("⚠️ Kafka unavailable, order events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	submission := orders.NewSubmission(orderAPI, sessions, publisher)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		JWTSecret:   cfg.JWT.SecretKey,
		Carts:       cart.NewManager(),
		Checkouts:   checkout.NewManager(),
		AuthFlows:   auth.NewManager(authService, sessions),
		Locations:   location.NewContext(),
		Sessions:    sessions,
		Submission:  submission,
		AuthService: authService,
		OrderAPI:    orderAPI,
		ProductAPI:  productAPI,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
