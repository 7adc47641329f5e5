package userControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/middleware"
	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

// POST /users
func CreateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid user payload: "+err.Error())
			return
		}

		user, err := users.CreateUser(req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, "User created successfully", user)
	}
}

// GET /users/:id
func GetUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if !canActOn(c, id) {
			response.Error(c, shoperr.Unauthorized("cannot access another user's account"))
			return
		}

		user, err := users.GetUserByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "User fetched successfully", user)
	}
}

// GET /users
func GetAllUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.GetAllUsers()
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Users fetched successfully", list)
	}
}

// PUT /users/:id
func UpdateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if !canActOn(c, id) {
			response.Error(c, shoperr.Unauthorized("cannot modify another user's account"))
			return
		}

		var req services.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid user payload: "+err.Error())
			return
		}

		user, err := users.UpdateUser(id, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "User updated successfully", user)
	}
}

// DELETE /users/:id
func DeleteUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if !canActOn(c, id) {
			response.Error(c, shoperr.Unauthorized("cannot delete another user's account"))
			return
		}

		if err := users.DeleteUser(id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "User deleted successfully", nil)
	}
}

// canActOn allows the owner of the account and admins.
func canActOn(c *gin.Context, targetID uint) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	callerID, ok := middleware.UserID(c)
	return ok && callerID == targetID
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.Invalid(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
