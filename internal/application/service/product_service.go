package service

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
	"github.com/sangkips/trademarket/pkg/pagination"
)

// ProductService handles product and product category operations
type ProductService struct {
	uow repository.UnitOfWork
}

// NewProductService creates a new product service
func NewProductService(uow repository.UnitOfWork) *ProductService {
	return &ProductService{uow: uow}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID uint            `validate:"required"`
	Name       string          `validate:"required,max=255"`
	Price      decimal.Decimal `validate:"gte=0"`
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID         uint            `validate:"required"`
	CategoryID uint            `validate:"required"`
	Name       string          `validate:"required,max=255"`
	Price      decimal.Decimal `validate:"gte=0"`
}

// ProductFilter narrows a product listing. A nil Pagination lists every match.
type ProductFilter struct {
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Pagination *pagination.PaginationParams
}

// CreateProduct creates a product in an existing category
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		category, err := findCategory(ctx, repos, input.CategoryID)
		if err != nil {
			return err
		}

		product = &entity.Product{
			ProductCategoryID: category.ID,
			ProductName:       input.Name,
			Price:             input.Price,
		}
		if err := repos.Products.Add(ctx, product); err != nil {
			return err
		}
		product.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"product_id": product.ID,
		"price":      product.Price.StringFixed(2),
	}).Info("Product created")
	return product, nil
}

// UpdateProduct updates a product. Existing receipt lines keep their prices.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		product, err = repos.Products.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("product")
		}

		category, err := findCategory(ctx, repos, input.CategoryID)
		if err != nil {
			return err
		}

		product.ProductCategoryID = category.ID
		product.ProductName = input.Name
		product.Price = input.Price
		if err := repos.Products.Update(ctx, product); err != nil {
			return err
		}
		product.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product with its category and receipt lines
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	var product *entity.Product
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		product, err = repos.Products.GetByIDWithDetails(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("product")
		}
		return nil
	})
	return product, err
}

// ListProducts lists products matching filter
func (s *ProductService) ListProducts(ctx context.Context, filter *ProductFilter) (*pagination.PaginatedResult[entity.Product], error) {
	if filter == nil {
		filter = &ProductFilter{}
	}

	var products []entity.Product
	var total int64
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		products, total, err = repos.Products.List(ctx, &repository.ProductFilterParams{
			Pagination: filter.Pagination,
			CategoryID: filter.CategoryID,
			MinPrice:   filter.MinPrice,
			MaxPrice:   filter.MaxPrice,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if filter.Pagination == nil {
		return pagination.NewPaginatedResult(products, nil), nil
	}
	pag := filter.Pagination.Describe(total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		product, err := repos.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("product")
		}
		return repos.Products.DeleteByID(ctx, id)
	})
}

func findCategory(ctx context.Context, repos *repository.Repositories, id uint) (*entity.ProductCategory, error) {
	category, err := repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("product category")
	}
	return category, nil
}
