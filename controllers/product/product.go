package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/services"
)

// GET /products
//
// Proxies the remote catalog; an unreachable or malformed catalog degrades
// to an empty menu rather than an error page.
func GetProducts(productAPI *services.ProductAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := productAPI.GetAllProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"products": []any{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/:product_id
//
// Returns the item with its options already split into side dishes and
// add-ons for the customization form.
func GetProduct(productAPI *services.ProductAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := productAPI.GetProduct(c.Request.Context(), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		sideDishes, addOns := services.ClassifyOptions(product.ProductOptions)
		c.JSON(http.StatusOK, gin.H{
			"product":    product,
			"sideDishes": sideDishes,
			"addOns":     addOns,
		})
	}
}
