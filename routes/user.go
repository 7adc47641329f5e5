package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/user"
	"github.com/QuantumLuke/QuantumShopsBE/middleware"
)

// SetupUserRoutes registers the JWT-protected user endpoints.
func SetupUserRoutes(api *gin.RouterGroup, s *Services) {
	users := api.Group("/users")
	users.Use(middleware.ValidateToken)
	{
		users.GET("/:id", userControllers.GetUser(s.Users))       // GET /users/:id
		users.PUT("/:id", userControllers.UpdateUser(s.Users))    // PUT /users/:id
		users.DELETE("/:id", userControllers.DeleteUser(s.Users)) // DELETE /users/:id

		users.GET("", middleware.RequireAdmin, userControllers.GetAllUsers(s.Users)) // GET /users (admin)
	}
}
