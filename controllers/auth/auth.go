package authControllers

import (
	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
)

// POST /auth/login
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid login payload: "+err.Error())
			return
		}

		result, err := auth.Login(req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Login success", result)
	}
}
