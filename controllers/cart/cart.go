package cartControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/middleware"
	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

// GET /carts/my
func GetMyCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Error(c, shoperr.Unauthorized("unauthorized"))
			return
		}
		cart, err := carts.InitializeCart(userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		// Reload with items for the response body.
		full, err := carts.GetCartByID(cart.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Cart fetched successfully", full)
	}
}

// GET /carts/:id
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c)
		if !ok {
			return
		}
		cart, err := carts.GetCartByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		if !ownsCart(c, cart.UserID) {
			response.Error(c, shoperr.Unauthorized("cannot access another user's cart"))
			return
		}
		response.OK(c, "Cart fetched successfully", cart)
	}
}

// GET /carts/:id/total
func GetTotalPrice(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c)
		if !ok {
			return
		}
		cart, err := carts.GetCartByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		if !ownsCart(c, cart.UserID) {
			response.Error(c, shoperr.Unauthorized("cannot access another user's cart"))
			return
		}
		response.OK(c, "Total price fetched successfully", cart.Total)
	}
}

// DELETE /carts/:id/clear
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c)
		if !ok {
			return
		}
		cart, err := carts.GetCartByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		if !ownsCart(c, cart.UserID) {
			response.Error(c, shoperr.Unauthorized("cannot clear another user's cart"))
			return
		}
		if err := carts.ClearCart(id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Cart cleared successfully", nil)
	}
}

func ownsCart(c *gin.Context, ownerID uint) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	callerID, ok := middleware.UserID(c)
	return ok && callerID == ownerID
}

func cartID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Invalid(c, "invalid cart id")
		return 0, false
	}
	return uint(id), true
}
