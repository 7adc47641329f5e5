// Package response renders the uniform {message, data} envelope used by
// every JSON endpoint.
package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data})
}

// Error writes the envelope for a service failure. Unexpected errors are
// logged and masked so internal detail never reaches the caller.
func Error(c *gin.Context, err error) {
	status := shoperr.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal server error"
	}
	c.JSON(status, Envelope{Message: message, Data: nil})
}

// Invalid is the 400 shortcut for malformed input caught at the boundary.
func Invalid(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: message, Data: nil})
}
