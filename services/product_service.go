package services

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/cache"
	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type AddProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Brand       string          `json:"brand" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Inventory   int             `json:"inventory" binding:"min=0"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Brand       string          `json:"brand" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Inventory   int             `json:"inventory" binding:"min=0"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
}

type ProductService struct {
	db    *gorm.DB
	cache *cache.ProductCache // nil when redis is not configured
}

func NewProductService(db *gorm.DB, productCache *cache.ProductCache) *ProductService {
	return &ProductService{db: db, cache: productCache}
}

// AddProduct creates a product. The (name, brand) pair must be unused; the
// category is resolved by name and created when absent.
func (s *ProductService) AddProduct(req AddProductRequest) (*models.Product, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).
		Where("name = ? AND brand = ?", req.Name, req.Brand).Count(&count).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	if count > 0 {
		return nil, shoperr.AlreadyExists("product %s %s already exists", req.Brand, req.Name)
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		category, err := resolveCategory(tx, req.Category)
		if err != nil {
			return err
		}
		product = models.Product{
			Name:        req.Name,
			Brand:       req.Brand,
			Price:       req.Price,
			Inventory:   req.Inventory,
			Description: req.Description,
			CategoryID:  category.ID,
			Category:    category,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		// concurrent insert racing the count check lands on the unique
		// (name, brand) index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shoperr.AlreadyExists("product %s %s already exists", req.Brand, req.Name)
		}
		var se *shoperr.Error
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, shoperr.Internal(err)
	}
	return &product, nil
}

// resolveCategory finds a category by name, creating it when none exists.
func resolveCategory(tx *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{Name: name}
		if err := tx.Create(&category).Error; err != nil {
			return nil, err
		}
		return &category, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetProductByID goes through the redis cache when one is configured.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			log.Printf("product cache read failed for id %d: %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var product models.Product
	if err := s.db.Preload("Category").Preload("Images").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("product not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &product); err != nil {
			log.Printf("product cache write failed for id %d: %v", id, err)
		}
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("product not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		category, err := resolveCategory(tx, req.Category)
		if err != nil {
			return err
		}
		product.Name = req.Name
		product.Brand = req.Brand
		product.Price = req.Price
		product.Inventory = req.Inventory
		product.Description = req.Description
		product.CategoryID = category.ID
		product.Category = category
		return tx.Save(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shoperr.AlreadyExists("product %s %s already exists", req.Brand, req.Name)
		}
		return nil, shoperr.Internal(err)
	}

	s.invalidate(ctx, id)
	return &product, nil
}

func (s *ProductService) DeleteProductByID(ctx context.Context, id uint) error {
	result := s.db.Select("Images").Delete(&models.Product{ID: id})
	if result.Error != nil {
		return shoperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return shoperr.NotFound("product not found with id: %d", id)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Printf("product cache invalidation failed for id %d: %v", id, err)
	}
}

func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.findProducts(s.db)
}

func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.findProducts(s.db.
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ?", category))
}

func (s *ProductService) GetProductsByBrand(brand string) ([]models.Product, error) {
	return s.findProducts(s.db.Where("brand = ?", brand))
}

func (s *ProductService) GetProductsByName(name string) ([]models.Product, error) {
	return s.findProducts(s.db.Where("products.name = ?", name))
}

func (s *ProductService) GetProductsByBrandAndName(brand, name string) ([]models.Product, error) {
	return s.findProducts(s.db.Where("brand = ? AND products.name = ?", brand, name))
}

func (s *ProductService) GetProductsByCategoryAndBrand(category, brand string) ([]models.Product, error) {
	return s.findProducts(s.db.
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ? AND brand = ?", category, brand))
}

func (s *ProductService) CountProductsByBrandAndName(brand, name string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).
		Where("brand = ? AND name = ?", brand, name).Count(&count).Error; err != nil {
		return 0, shoperr.Internal(err)
	}
	return count, nil
}

func (s *ProductService) findProducts(query *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := query.Preload("Category").Preload("Images").Find(&products).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return products, nil
}
