package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/order"
	"github.com/QuantumLuke/QuantumShopsBE/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, s *Services) {
	orders := api.Group("/orders")
	{
		authed := orders.Group("", middleware.ValidateToken)
		{
			// websocket feed of order events; it carries every user's
			// payloads, so only admins may subscribe
			authed.GET("/ws", middleware.RequireAdmin, orderControllers.OrderWebSocket)

			authed.POST("/place", orderControllers.PlaceOrder(s.Orders))
			authed.GET("/:id", orderControllers.GetOrderByID(s.Orders))
			authed.GET("/user/:userId", orderControllers.GetUserOrders(s.Orders))

			authed.GET("", middleware.RequireAdmin, orderControllers.GetAllOrders(s.Orders))
			authed.PUT("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatus(s.Orders))
		}
	}
}
