package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type CartItemService struct {
	db          *gorm.DB
	cartService *CartService
	products    *ProductService
}

func NewCartItemService(db *gorm.DB, cartService *CartService, products *ProductService) *CartItemService {
	return &CartItemService{db: db, cartService: cartService, products: products}
}

// AddItemToCart puts quantity units of a product into the user's cart. A
// product already in the cart gets its quantity increased instead of a second
// line; the unit price stays at the value snapshotted on first add.
func (s *CartItemService) AddItemToCart(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return shoperr.Invalid("quantity must be at least 1")
	}

	cart, err := s.cartService.InitializeCart(userID)
	if err != nil {
		return err
	}
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
			}
		case err != nil:
			return err
		default:
			item.Quantity += quantity
		}
		item.Subtotal = item.LineTotal()
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		return shoperr.Internal(err)
	}
	return nil
}

// UpdateItemQuantity sets the line's quantity and refreshes its unit price
// from the current catalog price.
func (s *CartItemService) UpdateItemQuantity(cartID, productID uint, quantity int) error {
	if quantity < 1 {
		return shoperr.Invalid("quantity must be at least 1")
	}

	cart, err := s.cartService.GetCartByID(cartID)
	if err != nil {
		return err
	}

	var item models.CartItem
	if err := s.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shoperr.NotFound("cart item not found for product id: %d", productID)
		}
		return shoperr.Internal(err)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shoperr.NotFound("product not found with id: %d", productID)
		}
		return shoperr.Internal(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		item.Quantity = quantity
		item.UnitPrice = product.Price
		item.Subtotal = item.LineTotal()
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		return shoperr.Internal(err)
	}
	return nil
}

func (s *CartItemService) RemoveItemFromCart(cartID, productID uint) error {
	cart, err := s.cartService.GetCartByID(cartID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shoperr.NotFound("cart item not found for product id: %d", productID)
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		var se *shoperr.Error
		if errors.As(err, &se) {
			return se
		}
		return shoperr.Internal(err)
	}
	return nil
}

// recomputeCartTotal rewrites cart.total as the exact decimal sum of the
// current line totals. Runs inside every cart mutation's transaction.
func recomputeCartTotal(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}
