package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/cart"
	"github.com/QuantumLuke/QuantumShopsBE/middleware"
)

// SetupCartRoutes registers the cart and cart-item endpoints. Everything is
// JWT-protected; the cart is always resolved through the caller's identity.
func SetupCartRoutes(api *gin.RouterGroup, s *Services) {
	carts := api.Group("/carts")
	carts.Use(middleware.ValidateToken)
	{
		carts.GET("/my", cartControllers.GetMyCart(s.Carts))         // GET /carts/my
		carts.GET("/:id", cartControllers.GetCart(s.Carts))          // GET /carts/:id
		carts.GET("/:id/total", cartControllers.GetTotalPrice(s.Carts))
		carts.DELETE("/:id/clear", cartControllers.ClearCart(s.Carts))
	}

	items := api.Group("/cart-items")
	items.Use(middleware.ValidateToken)
	{
		items.POST("/add", cartControllers.AddItemToCart(s.CartItems))
		items.PUT("/update", cartControllers.UpdateItemQuantity(s.CartItems, s.Carts))
		items.DELETE("/remove", cartControllers.RemoveItemFromCart(s.CartItems, s.Carts))
	}
}
