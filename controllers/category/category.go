package categoryControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /categories
func GetAllCategories(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.GetAllCategories()
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Categories fetched successfully", list)
	}
}

// GET /categories/:id
func GetCategoryByID(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		category, err := categories.GetCategoryByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Category fetched successfully", category)
	}
}

// GET /categories/name/:name
func GetCategoryByName(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.GetCategoryByName(c.Param("name"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Category fetched successfully", category)
	}
}

// POST /categories
func AddCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Invalid(c, "invalid category payload: "+err.Error())
			return
		}
		category, err := categories.AddCategory(input.Name)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, "Category created successfully", category)
	}
}

// PUT /categories/:id
func UpdateCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Invalid(c, "invalid category payload: "+err.Error())
			return
		}
		category, err := categories.UpdateCategory(id, input.Name)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Category updated successfully", category)
	}
}

// DELETE /categories/:id
func DeleteCategory(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := categories.DeleteCategory(id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Category deleted successfully", nil)
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
