package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/auth"
	userControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/user"
)

// SetupAuthRoutes registers the public auth and signup endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, s *Services) {
	api.POST("/auth/login", authControllers.Login(s.Auth))

	// Signup is public; everything else under /users is protected.
	api.POST("/users", userControllers.CreateUser(s.Users))
}
