package repository

import (
	"context"
	"time"

	"github.com/sangkips/trademarket/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Repository[entity.Receipt]
	// GetByIDWithDetails loads Customer.Person and
	// ReceiptDetails.Product.Category.
	GetByIDWithDetails(ctx context.Context, id uint) (*entity.Receipt, error)
	GetAllWithDetails(ctx context.Context) ([]entity.Receipt, error)
	ListWithDetails(ctx context.Context, params *ReceiptFilterParams) ([]entity.Receipt, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries.
// Date bounds are inclusive.
type ReceiptFilterParams struct {
	CustomerID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReceiptDetailRepository defines the interface for line item data operations
type ReceiptDetailRepository interface {
	Repository[entity.ReceiptDetail]
	// GetAllWithDetails loads Product.Category and Receipt for every line.
	GetAllWithDetails(ctx context.Context) ([]entity.ReceiptDetail, error)
	ListWithDetails(ctx context.Context, params *ReceiptDetailFilterParams) ([]entity.ReceiptDetail, error)
}

// ReceiptDetailFilterParams filters line items by their receipt, the owning
// customer, the product category, or the receipt's operation date
// (inclusive bounds). Results are ordered by line item id.
type ReceiptDetailFilterParams struct {
	ReceiptID  *uint
	CustomerID *uint
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}
