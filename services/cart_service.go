package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// InitializeCart returns the user's cart, creating one on first use.
func (s *CartService) InitializeCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Total: decimal.Zero}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, shoperr.Internal(err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, shoperr.Internal(err)
	}
	return &cart, nil
}

func (s *CartService) GetCartByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Preload("Items").Preload("Items.Product").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("cart not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	return &cart, nil
}

func (s *CartService) GetCartByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("cart not found for user: %d", userID)
		}
		return nil, shoperr.Internal(err)
	}
	return &cart, nil
}

// ClearCart removes every item and zeroes the total. The cart row itself
// survives so the user keeps the same cart on the next add.
func (s *CartService) ClearCart(id uint) error {
	cart, err := s.GetCartByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total", decimal.Zero).Error
	})
	if err != nil {
		return shoperr.Internal(err)
	}
	return nil
}

func (s *CartService) GetTotalPrice(id uint) (decimal.Decimal, error) {
	cart, err := s.GetCartByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total, nil
}
