package orderControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/middleware"
	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders/place
func PlaceOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Error(c, shoperr.Unauthorized("unauthorized"))
			return
		}

		order, err := orders.PlaceOrder(userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		broadcastOrderEvent("order_placed", order)
		response.Created(c, "Order placed successfully", order)
	}
}

// GET /orders/:id
func GetOrderByID(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		order, err := orders.GetOrderByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		if !middleware.IsAdmin(c) {
			callerID, _ := middleware.UserID(c)
			if callerID != order.UserID {
				response.Error(c, shoperr.Unauthorized("cannot access another user's order"))
				return
			}
		}
		response.OK(c, "Order fetched successfully", order)
	}
}

// GET /orders/user/:userId
func GetUserOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			response.Invalid(c, "invalid userId parameter")
			return
		}
		if !middleware.IsAdmin(c) {
			callerID, _ := middleware.UserID(c)
			if callerID != uint(targetID) {
				response.Error(c, shoperr.Unauthorized("cannot access another user's orders"))
				return
			}
		}

		list, err := orders.GetOrdersByUserID(uint(targetID))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Orders fetched successfully", list)
	}
}

// GET /orders (admin)
func GetAllOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.GetAllOrders()
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Orders fetched successfully", list)
	}
}

// PUT /orders/:id/status (admin)
func UpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid status payload: "+err.Error())
			return
		}

		order, err := orders.UpdateOrderStatus(id, req.Status)
		if err != nil {
			response.Error(c, err)
			return
		}
		broadcastOrderEvent("order_status_updated", order)
		response.OK(c, "Order status updated successfully", order)
	}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Invalid(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}
