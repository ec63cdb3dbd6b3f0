package repository

import (
	"context"
)

// Repository is the CRUD contract every entity gateway offers.
// GetByID returns (nil, nil) when the row does not exist.
type Repository[T any] interface {
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id uint) error
	Delete(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
}

// Repositories holds one gateway per entity type, all bound to the same
// unit of work.
type Repositories struct {
	Customers      CustomerRepository
	Persons        PersonRepository
	Products       ProductRepository
	Categories     ProductCategoryRepository
	Receipts       ReceiptRepository
	ReceiptDetails ReceiptDetailRepository
}

// UnitOfWork runs fn inside a single transaction. Writes made through the
// given repositories are committed together when fn returns nil and rolled
// back when it returns an error.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}
