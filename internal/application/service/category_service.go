package service

import (
	"context"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
	"github.com/sangkips/trademarket/pkg/utils"
)

// CategoryInput represents the create/update category input
type CategoryInput struct {
	Name string `validate:"required,max=255"`
}

// CreateCategory creates a product category. Names that slugify to the same
// value as an existing category are rejected.
func (s *ProductService) CreateCategory(ctx context.Context, input *CategoryInput) (*entity.ProductCategory, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var category *entity.ProductCategory
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if err := ensureCategoryNameFree(ctx, repos, input.Name, 0); err != nil {
			return err
		}

		category = &entity.ProductCategory{CategoryName: input.Name}
		return repos.Categories.Add(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists every product category
func (s *ProductService) ListCategories(ctx context.Context) ([]entity.ProductCategory, error) {
	var categories []entity.ProductCategory
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		categories, err = repos.Categories.GetAll(ctx)
		return err
	})
	return categories, err
}

// UpdateCategory renames a product category
func (s *ProductService) UpdateCategory(ctx context.Context, id uint, input *CategoryInput) (*entity.ProductCategory, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var category *entity.ProductCategory
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		category, err = findCategory(ctx, repos, id)
		if err != nil {
			return err
		}

		if err := ensureCategoryNameFree(ctx, repos, input.Name, category.ID); err != nil {
			return err
		}

		category.CategoryName = input.Name
		return repos.Categories.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a product category
func (s *ProductService) DeleteCategory(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if _, err := findCategory(ctx, repos, id); err != nil {
			return err
		}
		return repos.Categories.DeleteByID(ctx, id)
	})
}

func ensureCategoryNameFree(ctx context.Context, repos *repository.Repositories, name string, exceptID uint) error {
	categories, err := repos.Categories.GetAll(ctx)
	if err != nil {
		return err
	}

	slug := utils.Slugify(name)
	for _, c := range categories {
		if c.ID != exceptID && utils.Slugify(c.CategoryName) == slug {
			return apperror.NewConflictError("product category with this name already exists")
		}
	}
	return nil
}
