package productControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
)

// POST /products
func AddProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.AddProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid product payload: "+err.Error())
			return
		}
		product, err := products.AddProduct(req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, "Product created successfully", product)
	}
}

// GET /products/:id
func GetProductByID(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		product, err := products.GetProductByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Product fetched successfully", product)
	}
}

// GET /products with optional filters: ?category= &brand= &name=
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := searchProducts(products, c.Query("category"), c.Query("brand"), c.Query("name"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Products fetched successfully", result)
	}
}

func searchProducts(products *services.ProductService, category, brand, name string) ([]models.Product, error) {
	switch {
	case category != "" && brand != "":
		return products.GetProductsByCategoryAndBrand(category, brand)
	case brand != "" && name != "":
		return products.GetProductsByBrandAndName(brand, name)
	case category != "":
		return products.GetProductsByCategory(category)
	case brand != "":
		return products.GetProductsByBrand(brand)
	case name != "":
		return products.GetProductsByName(name)
	default:
		return products.GetAllProducts()
	}
}

// GET /products/count?brand=&name=
func CountProductsByBrandAndName(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := products.CountProductsByBrandAndName(c.Query("brand"), c.Query("name"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Product count fetched successfully", count)
	}
}

// PUT /products/:id
func UpdateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req services.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Invalid(c, "invalid product payload: "+err.Error())
			return
		}
		product, err := products.UpdateProduct(c.Request.Context(), id, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Product updated successfully", product)
	}
}

// DELETE /products/:id
func DeleteProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := products.DeleteProductByID(c.Request.Context(), id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Product deleted successfully", nil)
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Invalid(c, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
