package cartControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/middleware"
	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

// POST /cart-items/add?productId=&quantity=
func AddItemToCart(items *services.CartItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Error(c, shoperr.Unauthorized("unauthorized"))
			return
		}
		productID, ok := queryUint(c, "productId")
		if !ok {
			return
		}
		quantity, ok := queryInt(c, "quantity")
		if !ok {
			return
		}

		if err := items.AddItemToCart(c.Request.Context(), userID, productID, quantity); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Item added successfully", nil)
	}
}

// PUT /cart-items/update?cartId=&productId=&quantity=
func UpdateItemQuantity(items *services.CartItemService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := callerCartID(c, carts)
		if !ok {
			return
		}
		productID, ok := queryUint(c, "productId")
		if !ok {
			return
		}
		quantity, ok := queryInt(c, "quantity")
		if !ok {
			return
		}

		if err := items.UpdateItemQuantity(cartID, productID, quantity); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Item quantity updated successfully", nil)
	}
}

// DELETE /cart-items/remove?productId=
func RemoveItemFromCart(items *services.CartItemService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := callerCartID(c, carts)
		if !ok {
			return
		}
		productID, ok := queryUint(c, "productId")
		if !ok {
			return
		}

		if err := items.RemoveItemFromCart(cartID, productID); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Item removed successfully", nil)
	}
}

// callerCartID resolves the authenticated user's cart id.
func callerCartID(c *gin.Context, carts *services.CartService) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, shoperr.Unauthorized("unauthorized"))
		return 0, false
	}
	cart, err := carts.GetCartByUserID(userID)
	if err != nil {
		response.Error(c, err)
		return 0, false
	}
	return cart.ID, true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		response.Invalid(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(val), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	val, err := strconv.Atoi(c.Query(name))
	if err != nil {
		response.Invalid(c, "invalid "+name+" parameter")
		return 0, false
	}
	return val, true
}
