package handler

import (
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
)

// CustomerHandler handles customer commands
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *cli.Context) error {
	input := &service.CreateCustomerInput{
		Name:          c.String("name"),
		Surname:       c.String("surname"),
		BirthDate:     GetDate(c, "birth-date"),
		DiscountValue: c.Int("discount"),
	}

	customer, err := h.customerService.CreateCustomer(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customer created successfully", customer)
}

// Update handles updating a customer's personal data and discount
func (h *CustomerHandler) Update(c *cli.Context) error {
	input := &service.UpdateCustomerInput{
		ID:            c.Uint("id"),
		Name:          c.String("name"),
		Surname:       c.String("surname"),
		BirthDate:     GetDate(c, "birth-date"),
		DiscountValue: c.Int("discount"),
	}

	customer, err := h.customerService.UpdateCustomer(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customer updated successfully", customer)
}

// List handles listing customers
func (h *CustomerHandler) List(c *cli.Context) error {
	customers, err := h.customerService.ListCustomers(c.Context)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customers retrieved successfully", customers)
}

// Get handles getting a customer with its receipts
func (h *CustomerHandler) Get(c *cli.Context) error {
	customer, err := h.customerService.GetCustomer(c.Context, c.Uint("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customer retrieved successfully", customer)
}

// ByProduct handles listing customers who bought a product
func (h *CustomerHandler) ByProduct(c *cli.Context) error {
	customers, err := h.customerService.GetCustomersByProductID(c.Context, c.Uint("product"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customers retrieved successfully", customers)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *cli.Context) error {
	if err := h.customerService.DeleteCustomer(c.Context, c.Uint("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customer deleted successfully", nil)
}
