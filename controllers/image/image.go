package imageControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
)

// POST /images/upload (multipart: files[], productId)
func SaveImages(images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.PostForm("productId"), 10, 64)
		if err != nil {
			response.Invalid(c, "invalid productId parameter")
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			response.Invalid(c, "invalid multipart form: "+err.Error())
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			response.Invalid(c, "at least one file is required")
			return
		}

		saved, err := images.SaveImages(c.Request.Context(), files, uint(productID))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Images uploaded successfully", saved)
	}
}

// GET /images/image/download/:id — raw bytes with attachment headers.
func DownloadImage(images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := imageID(c)
		if !ok {
			return
		}
		image, err := images.GetImageByID(id)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", image.Filename))
		c.Data(http.StatusOK, image.FileType, image.Data)
	}
}

// PUT /images/image/:id/update (multipart: file)
func UpdateImage(images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := imageID(c)
		if !ok {
			return
		}
		file, err := c.FormFile("file")
		if err != nil {
			response.Invalid(c, "file is required")
			return
		}

		image, err := images.UpdateImage(file, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Image updated successfully", image)
	}
}

// DELETE /images/image/:id/delete
func DeleteImage(images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := imageID(c)
		if !ok {
			return
		}
		if err := images.DeleteImageByID(id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Image deleted successfully", nil)
	}
}

func imageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Invalid(c, "invalid image id")
		return 0, false
	}
	return uint(id), true
}
