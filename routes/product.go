package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/NAdun-bit/rasa-storefront-api/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, deps Deps) {
	// The menu is browsable before any session exists.
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", productControllers.GetProducts(deps.ProductAPI))
		productRoutes.GET("/:product_id", productControllers.GetProduct(deps.ProductAPI))
	}
}
