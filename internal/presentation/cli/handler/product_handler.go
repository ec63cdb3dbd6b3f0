package handler

import (
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
	"github.com/sangkips/trademarket/pkg/pagination"
)

// ProductHandler handles product and category commands
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *cli.Context) error {
	price, _, err := GetDecimal(c, "price")
	if err != nil {
		return response.Error(c, err)
	}

	input := &service.CreateProductInput{
		CategoryID: c.Uint("category"),
		Name:       c.String("name"),
		Price:      price,
	}

	product, err := h.productService.CreateProduct(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *cli.Context) error {
	price, _, err := GetDecimal(c, "price")
	if err != nil {
		return response.Error(c, err)
	}

	input := &service.UpdateProductInput{
		ID:         c.Uint("id"),
		CategoryID: c.Uint("category"),
		Name:       c.String("name"),
		Price:      price,
	}

	product, err := h.productService.UpdateProduct(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product updated successfully", product)
}

// List handles listing products. Paging applies only when --page or
// --per-page is given.
func (h *ProductHandler) List(c *cli.Context) error {
	filter := &service.ProductFilter{}

	if c.IsSet("category") {
		categoryID := c.Uint("category")
		filter.CategoryID = &categoryID
	}
	if minPrice, ok, err := GetDecimal(c, "min-price"); err != nil {
		return response.Error(c, err)
	} else if ok {
		filter.MinPrice = &minPrice
	}
	if maxPrice, ok, err := GetDecimal(c, "max-price"); err != nil {
		return response.Error(c, err)
	} else if ok {
		filter.MaxPrice = &maxPrice
	}
	if c.IsSet("page") || c.IsSet("per-page") {
		filter.Pagination = &pagination.PaginationParams{
			Page:    c.Int("page"),
			PerPage: c.Int("per-page"),
		}
	}

	result, err := h.productService.ListProducts(c.Context, filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.SuccessWithPagination(c, "Products retrieved successfully", result)
}

// Get handles getting a product
func (h *ProductHandler) Get(c *cli.Context) error {
	product, err := h.productService.GetProduct(c.Context, c.Uint("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product retrieved successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *cli.Context) error {
	if err := h.productService.DeleteProduct(c.Context, c.Uint("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product deleted successfully", nil)
}

// CreateCategory handles creating a product category
func (h *ProductHandler) CreateCategory(c *cli.Context) error {
	category, err := h.productService.CreateCategory(c.Context, &service.CategoryInput{Name: c.String("name")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Category created successfully", category)
}

// ListCategories handles listing product categories
func (h *ProductHandler) ListCategories(c *cli.Context) error {
	categories, err := h.productService.ListCategories(c.Context)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Categories retrieved successfully", categories)
}

// UpdateCategory handles renaming a product category
func (h *ProductHandler) UpdateCategory(c *cli.Context) error {
	category, err := h.productService.UpdateCategory(c.Context, c.Uint("id"), &service.CategoryInput{Name: c.String("name")})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a product category
func (h *ProductHandler) DeleteCategory(c *cli.Context) error {
	if err := h.productService.DeleteCategory(c.Context, c.Uint("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Category deleted successfully", nil)
}
