package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null;index:idx_products_name_brand,unique" json:"name"`
	Brand       string          `gorm:"not null;index:idx_products_name_brand,unique" json:"brand"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Inventory   int             `gorm:"not null" json:"inventory"`
	Description string          `json:"description"`
	CategoryID  uint            `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images      []Image         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
