package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/trademarket/internal/domain/enum"
)

// Receipt is a sale to one customer, composed of line items
type Receipt struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerID    uint      `gorm:"not null;index" json:"customer_id"`
	OperationDate time.Time `gorm:"not null;index" json:"operation_date"`
	IsCheckedOut  bool      `gorm:"not null;default:false" json:"is_checked_out"`

	// Relationships
	Customer       *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ReceiptDetails []ReceiptDetail `gorm:"foreignKey:ReceiptID" json:"receipt_details,omitempty"`
}

// BeforeSave stamps the operation date when the caller left it empty. Operation
// dates are stored in UTC.
func (r *Receipt) BeforeSave(tx *gorm.DB) error {
	if r.OperationDate.IsZero() {
		r.OperationDate = time.Now()
	}
	r.OperationDate = r.OperationDate.UTC()
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// State reports where the receipt is in its lifecycle
func (r *Receipt) State() enum.ReceiptState {
	if r.IsCheckedOut {
		return enum.ReceiptStateCheckedOut
	}
	return enum.ReceiptStateOpen
}

// FindDetail returns the line item for productID, or nil.
func (r *Receipt) FindDetail(productID uint) *ReceiptDetail {
	for i := range r.ReceiptDetails {
		if r.ReceiptDetails[i].ProductID == productID {
			return &r.ReceiptDetails[i]
		}
	}
	return nil
}

// Total sums quantity * discountUnitPrice over all line items
func (r *Receipt) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range r.ReceiptDetails {
		total = total.Add(r.ReceiptDetails[i].LineTotal())
	}
	return total
}

// ReceiptDetail is one product line on a receipt. UnitPrice and
// DiscountUnitPrice are frozen when the line is created.
type ReceiptDetail struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ReceiptID         uint            `gorm:"not null;uniqueIndex:idx_receipt_product" json:"receipt_id"`
	ProductID         uint            `gorm:"not null;uniqueIndex:idx_receipt_product;index" json:"product_id"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	DiscountUnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"discount_unit_price"`
	Quantity          int             `gorm:"not null" json:"quantity"`

	// Relationships
	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the ReceiptDetail model
func (ReceiptDetail) TableName() string {
	return "receipt_details"
}

// LineTotal returns quantity * discountUnitPrice
func (d *ReceiptDetail) LineTotal() decimal.Decimal {
	return d.DiscountUnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
