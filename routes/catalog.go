package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/category"
	productControllers "github.com/QuantumLuke/QuantumShopsBE/controllers/product"
	"github.com/QuantumLuke/QuantumShopsBE/middleware"
)

// SetupCatalogRoutes registers product and category endpoints. Reads are
// public, mutations are admin-only.
func SetupCatalogRoutes(api *gin.RouterGroup, s *Services) {
	categories := api.Group("/categories")
	{
		categories.GET("", categoryControllers.GetAllCategories(s.Categories))
		categories.GET("/:id", categoryControllers.GetCategoryByID(s.Categories))
		categories.GET("/name/:name", categoryControllers.GetCategoryByName(s.Categories))

		admin := categories.Group("", middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.POST("", categoryControllers.AddCategory(s.Categories))
			admin.PUT("/:id", categoryControllers.UpdateCategory(s.Categories))
			admin.DELETE("/:id", categoryControllers.DeleteCategory(s.Categories))
		}
	}

	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(s.Products))
		products.GET("/:id", productControllers.GetProductByID(s.Products))
		products.GET("/count", productControllers.CountProductsByBrandAndName(s.Products))

		admin := products.Group("", middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.POST("", productControllers.AddProduct(s.Products))
			admin.PUT("/:id", productControllers.UpdateProduct(s.Products))
			admin.DELETE("/:id", productControllers.DeleteProduct(s.Products))
			admin.GET("/export", productControllers.ExportProductsToExcel(s.Products))
		}
	}
}
