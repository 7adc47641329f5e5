package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder converts the user's cart into an immutable order. The whole
// flow runs in one transaction: lock the cart row, read its items, lock each
// product row, check and decrement inventory, snapshot the line, create the
// order, clear the cart items. Any failure rolls everything back, and the
// cart lock keeps two checkouts of the same cart from interleaving.
func (s *OrderService) PlaceOrder(userID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := lockForUpdate(tx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shoperr.Invalid("cart is empty")
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Find(&cart.Items).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return shoperr.Invalid("cart is empty")
		}

		total := decimal.Zero
		var orderItems []models.OrderItem

		for _, item := range cart.Items {
			var product models.Product
			if err := lockForUpdate(tx).First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return shoperr.NotFound("product not found with id: %d", item.ProductID)
				}
				return err
			}

			if product.Inventory < item.Quantity {
				return shoperr.Invalid("insufficient inventory for product: %s", product.Name)
			}

			product.Inventory -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total = total.Add(item.LineTotal())
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		order = models.Order{
			UserID:    userID,
			OrderRef:  generateOrderRef(),
			Items:     orderItems,
			Total:     total,
			Status:    models.OrderStatusPending,
			OrderDate: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items; the cart row stays for the next add.
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total", decimal.Zero).Error
	})
	if err != nil {
		var se *shoperr.Error
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, shoperr.Internal(err)
	}
	return &order, nil
}

// lockForUpdate takes a row lock so concurrent checkouts serialize on the
// cart row and the inventory decrement. sqlite (tests) has no row locks;
// its writes are serialized by the single-writer transaction instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("order not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	return &order, nil
}

func (s *OrderService) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return orders, nil
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return orders, nil
}

// UpdateOrderStatus is the only mutation an order accepts after placement.
func (s *OrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	mapped, err := mapOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	order.Status = mapped
	if err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", mapped).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return order, nil
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", shoperr.Invalid("invalid order status: %s", status)
	}
}
