package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/services"
)

const apiPrefix = "/api/v1"

// Services bundles the service layer for route registration.
type Services struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Categories *services.CategoryService
	Products   *services.ProductService
	Carts      *services.CartService
	CartItems  *services.CartItemService
	Orders     *services.OrderService
	Images     *services.ImageService
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, s *Services) {
	api := r.Group(apiPrefix)

	SetupAuthRoutes(api, s)
	SetupUserRoutes(api, s)
	SetupCatalogRoutes(api, s)
	SetupCartRoutes(api, s)
	SetupOrderRoutes(api, s)
	SetupImageRoutes(api, s)
}
