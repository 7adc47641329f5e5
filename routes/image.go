package routes

import (
	"github.com/gin-gonic/gin"

	imageControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/image"
	"github.com/QuantumLuke/QuantumShopsBE/middleware"
)

func SetupImageRoutes(api *gin.RouterGroup, s *Services) {
	images := api.Group("/images")
	{
		// Downloads are public so product pages can embed them.
		images.GET("/image/download/:id", imageControllers.DownloadImage(s.Images))

		admin := images.Group("", middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.POST("/upload", imageControllers.SaveImages(s.Images))
			admin.PUT("/image/:id/update", imageControllers.UpdateImage(s.Images))
			admin.DELETE("/image/:id/delete", imageControllers.DeleteImage(s.Images))
		}
	}
}
