package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sangkips/trademarket/internal/domain/entity"
	domainRepo "github.com/sangkips/trademarket/internal/domain/repository"
)

type receiptRepository struct {
	baseRepository[entity.Receipt]
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{newBaseRepository[entity.Receipt](db, "receipts")}
}

func (r *receiptRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer.Person").
		Preload("ReceiptDetails", orderByID("receipt_details")).
		Preload("ReceiptDetails.Product.Category")
}

func (r *receiptRepository) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Receipt, error) {
	return r.first(r.withDetails(ctx), id)
}

func (r *receiptRepository) GetAllWithDetails(ctx context.Context) ([]entity.Receipt, error) {
	return r.find(r.withDetails(ctx))
}

func (r *receiptRepository) ListWithDetails(ctx context.Context, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, error) {
	query := r.withDetails(ctx)

	if params.CustomerID != nil {
		query = query.Where("receipts.customer_id = ?", *params.CustomerID)
	}

	return r.find(query.Scopes(OperationPeriod(params.StartDate, params.EndDate)))
}

type receiptDetailRepository struct {
	baseRepository[entity.ReceiptDetail]
}

// NewReceiptDetailRepository creates a new receipt detail repository
func NewReceiptDetailRepository(db *gorm.DB) domainRepo.ReceiptDetailRepository {
	return &receiptDetailRepository{newBaseRepository[entity.ReceiptDetail](db, "receipt_details")}
}

func (r *receiptDetailRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Receipt").
		Preload("Product.Category")
}

func (r *receiptDetailRepository) GetAllWithDetails(ctx context.Context) ([]entity.ReceiptDetail, error) {
	return r.find(r.withDetails(ctx))
}

func (r *receiptDetailRepository) ListWithDetails(ctx context.Context, params *domainRepo.ReceiptDetailFilterParams) ([]entity.ReceiptDetail, error) {
	query := r.withDetails(ctx).Select("receipt_details.*")

	if params.ReceiptID != nil {
		query = query.Where("receipt_details.receipt_id = ?", *params.ReceiptID)
	}

	if params.CustomerID != nil || params.StartDate != nil || params.EndDate != nil {
		query = query.Joins("JOIN receipts ON receipts.id = receipt_details.receipt_id")
		if params.CustomerID != nil {
			query = query.Where("receipts.customer_id = ?", *params.CustomerID)
		}
		query = query.Scopes(OperationPeriod(params.StartDate, params.EndDate))
	}

	if params.CategoryID != nil {
		query = query.
			Joins("JOIN products ON products.id = receipt_details.product_id").
			Where("products.product_category_id = ?", *params.CategoryID)
	}

	return r.find(query)
}
