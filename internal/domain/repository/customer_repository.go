package repository

import (
	"context"

	"github.com/sangkips/trademarket/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Repository[entity.Customer]
	// GetByIDWithDetails loads Person, Receipts and their ReceiptDetails.
	GetByIDWithDetails(ctx context.Context, id uint) (*entity.Customer, error)
	GetAllWithDetails(ctx context.Context) ([]entity.Customer, error)
	// ListByProduct returns customers with at least one line item for productID.
	ListByProduct(ctx context.Context, productID uint) ([]entity.Customer, error)
}

// PersonRepository defines the interface for person data operations
type PersonRepository interface {
	Repository[entity.Person]
}
