package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sangkips/trademarket/internal/domain/entity"
	domainRepo "github.com/sangkips/trademarket/internal/domain/repository"
)

type productRepository struct {
	baseRepository[entity.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{newBaseRepository[entity.Product](db, "products")}
}

func (r *productRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("ReceiptDetails", orderByID("receipt_details"))
}

func (r *productRepository) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Product, error) {
	return r.first(r.withDetails(ctx), id)
}

func (r *productRepository) GetAllWithDetails(ctx context.Context) ([]entity.Product, error) {
	return r.find(r.withDetails(ctx))
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.CategoryID != nil {
		query = query.Where("product_category_id = ?", *params.CategoryID)
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err, "products: count")
	}

	err := query.Scopes(Paginate(params.Pagination)).
		Preload("Category").
		Order("products.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, 0, wrapErr(err, "products: list")
	}

	return products, total, nil
}

type productCategoryRepository struct {
	baseRepository[entity.ProductCategory]
}

// NewProductCategoryRepository creates a new product category repository
func NewProductCategoryRepository(db *gorm.DB) domainRepo.ProductCategoryRepository {
	return &productCategoryRepository{newBaseRepository[entity.ProductCategory](db, "product_categories")}
}
