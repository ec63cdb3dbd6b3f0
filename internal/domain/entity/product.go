package entity

import (
	"github.com/shopspring/decimal"
)

// ProductCategory groups products for reporting
type ProductCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryName string `gorm:"size:255;not null" json:"category_name"`

	// Relationships
	Products []Product `gorm:"foreignKey:ProductCategoryID" json:"-"`
}

// TableName returns the table name for the ProductCategory model
func (ProductCategory) TableName() string {
	return "product_categories"
}

// Product represents a sellable item with its current list price
type Product struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ProductCategoryID uint            `gorm:"not null;index" json:"product_category_id"`
	ProductName       string          `gorm:"size:255;not null" json:"product_name"`
	Price             decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`

	// Relationships
	Category       *ProductCategory `gorm:"foreignKey:ProductCategoryID" json:"category,omitempty"`
	ReceiptDetails []ReceiptDetail  `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// CategoryName returns the loaded category's name, or "" when not loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.CategoryName
}
