package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Repository[entity.Product]
	// GetByIDWithDetails loads Category and ReceiptDetails.
	GetByIDWithDetails(ctx context.Context, id uint) (*entity.Product, error)
	GetAllWithDetails(ctx context.Context) ([]entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries.
// A nil Pagination returns every match.
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// ProductCategoryRepository defines the interface for category data operations
type ProductCategoryRepository interface {
	Repository[entity.ProductCategory]
}
