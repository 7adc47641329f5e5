package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

const downloadURLPrefix = "/api/v1/images/image/download/"

type ImageService struct {
	db       *gorm.DB
	products *ProductService
}

func NewImageService(db *gorm.DB, products *ProductService) *ImageService {
	return &ImageService{db: db, products: products}
}

func (s *ImageService) GetImageByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("image not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	return &image, nil
}

// SaveImages stores uploaded files as rows owned by the product.
func (s *ImageService) SaveImages(ctx context.Context, files []*multipart.FileHeader, productID uint) ([]models.Image, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var saved []models.Image
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			data, err := readFile(file)
			if err != nil {
				return err
			}
			image := models.Image{
				Filename:  file.Filename,
				FileType:  file.Header.Get("Content-Type"),
				Data:      data,
				ProductID: product.ID,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			image.DownloadURL = fmt.Sprintf("%s%d", downloadURLPrefix, image.ID)
			if err := tx.Model(&models.Image{}).Where("id = ?", image.ID).
				Update("download_url", image.DownloadURL).Error; err != nil {
				return err
			}
			saved = append(saved, image)
		}
		return nil
	})
	if err != nil {
		return nil, shoperr.Internal(err)
	}
	return saved, nil
}

func (s *ImageService) UpdateImage(file *multipart.FileHeader, id uint) (*models.Image, error) {
	image, err := s.GetImageByID(id)
	if err != nil {
		return nil, err
	}
	data, err := readFile(file)
	if err != nil {
		return nil, shoperr.Internal(err)
	}

	image.Filename = file.Filename
	image.FileType = file.Header.Get("Content-Type")
	image.Data = data
	if err := s.db.Save(image).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return image, nil
}

func (s *ImageService) DeleteImageByID(id uint) error {
	result := s.db.Delete(&models.Image{}, id)
	if result.Error != nil {
		return shoperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return shoperr.NotFound("image not found with id: %d", id)
	}
	return nil
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
