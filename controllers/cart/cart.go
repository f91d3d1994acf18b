package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/cart"
	"github.com/NAdun-bit/rasa-storefront-api/middleware"
	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// POST /cart/items
func AddItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cart.EntryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		entry, err := carts.Cart(middleware.SessionID(c)).AddEntry(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /cart/items/:entry_id
func RemoveItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Cart(middleware.SessionID(c)).RemoveEntry(c.Param("entry_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Cart(middleware.SessionID(c)).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket := carts.Cart(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{
			"items":       basket.Entries(),
			"serviceType": basket.ServiceType(),
			"totals":      basket.Totals(),
		})
	}
}

type serviceTypeInput struct {
	ServiceType models.ServiceType `json:"serviceType" binding:"required"`
}

// PUT /cart/service-type
func SetServiceType(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input serviceTypeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		basket := carts.Cart(middleware.SessionID(c))
		if err := basket.SetServiceType(input.ServiceType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"serviceType": basket.ServiceType(),
			"totals":      basket.Totals(),
		})
	}
}
