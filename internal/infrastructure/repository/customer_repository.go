package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sangkips/trademarket/internal/domain/entity"
	domainRepo "github.com/sangkips/trademarket/internal/domain/repository"
)

type customerRepository struct {
	baseRepository[entity.Customer]
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{newBaseRepository[entity.Customer](db, "customers")}
}

func (r *customerRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Person").
		Preload("Receipts", orderByID("receipts")).
		Preload("Receipts.ReceiptDetails", orderByID("receipt_details"))
}

func (r *customerRepository) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Customer, error) {
	return r.first(r.withDetails(ctx), id)
}

func (r *customerRepository) GetAllWithDetails(ctx context.Context) ([]entity.Customer, error) {
	return r.find(r.withDetails(ctx))
}

func (r *customerRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.Customer, error) {
	buyers := r.db.Model(&entity.Receipt{}).
		Select("receipts.customer_id").
		Joins("JOIN receipt_details ON receipt_details.receipt_id = receipts.id").
		Where("receipt_details.product_id = ?", productID)

	return r.find(r.db.WithContext(ctx).
		Preload("Person").
		Where("customers.id IN (?)", buyers))
}

type personRepository struct {
	baseRepository[entity.Person]
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) domainRepo.PersonRepository {
	return &personRepository{newBaseRepository[entity.Person](db, "persons")}
}

// orderByID keeps preloaded collections in insertion order.
func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}
