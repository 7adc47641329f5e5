package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint            `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint            `gorm:"index" json:"cart_id"`
	ProductID uint            `gorm:"index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"` // catalog price at add time
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	AddedAt   time.Time       `json:"added_at"`
}

// LineTotal is UnitPrice x Quantity in exact decimal arithmetic.
func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
