package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("category not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("category not found with name: %s", name)
		}
		return nil, shoperr.Internal(err)
	}
	return &category, nil
}

func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return categories, nil
}

func (s *CategoryService) AddCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shoperr.Invalid("category name cannot be empty")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	if count > 0 {
		return nil, shoperr.AlreadyExists("category with name '%s' already exists", name)
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		// concurrent insert racing the count check lands on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shoperr.AlreadyExists("category with name '%s' already exists", name)
		}
		return nil, shoperr.Internal(err)
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shoperr.Invalid("category name cannot be empty")
	}

	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	if count > 0 {
		return nil, shoperr.AlreadyExists("category with name '%s' already exists", name)
	}

	category.Name = name
	if err := s.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shoperr.AlreadyExists("category with name '%s' already exists", name)
		}
		return nil, shoperr.Internal(err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return shoperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return shoperr.NotFound("category not found with id: %d", id)
	}
	return nil
}
