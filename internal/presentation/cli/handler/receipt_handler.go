package handler

import (
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
)

// ReceiptHandler handles receipt commands
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// ReceiptTotal is the payload of the total command
type ReceiptTotal struct {
	ReceiptID uint            `json:"receipt_id"`
	Total     decimal.Decimal `json:"total"`
}

// Create handles opening a receipt, optionally with initial items
func (h *ReceiptHandler) Create(c *cli.Context) error {
	items, err := ParseItems(c.StringSlice("item"))
	if err != nil {
		return response.Error(c, err)
	}

	input := &service.CreateReceiptInput{
		CustomerID:    c.Uint("customer"),
		OperationDate: GetDate(c, "date"),
		Items:         items,
	}

	receipt, err := h.receiptService.CreateReceipt(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt created successfully", receipt)
}

// Get handles getting a receipt with its line items
func (h *ReceiptHandler) Get(c *cli.Context) error {
	receipt, err := h.receiptService.GetReceipt(c.Context, c.Uint("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt retrieved successfully", receipt)
}

// List handles listing every receipt
func (h *ReceiptHandler) List(c *cli.Context) error {
	receipts, err := h.receiptService.ListReceipts(c.Context)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipts retrieved successfully", receipts)
}

// Update handles reassigning a receipt's customer or operation date
func (h *ReceiptHandler) Update(c *cli.Context) error {
	input := &service.UpdateReceiptInput{ID: c.Uint("id")}
	if c.IsSet("customer") {
		customerID := c.Uint("customer")
		input.CustomerID = &customerID
	}
	if ts := c.Timestamp("date"); ts != nil {
		input.OperationDate = ts
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Context, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt updated successfully", receipt)
}

// AddProduct handles adding units of a product to a receipt
func (h *ReceiptHandler) AddProduct(c *cli.Context) error {
	if err := h.receiptService.AddProduct(c.Context, c.Uint("id"), c.Uint("product"), c.Int("quantity")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product added successfully", nil)
}

// RemoveProduct handles removing units of a product from a receipt
func (h *ReceiptHandler) RemoveProduct(c *cli.Context) error {
	if err := h.receiptService.RemoveProduct(c.Context, c.Uint("id"), c.Uint("product"), c.Int("quantity")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Product removed successfully", nil)
}

// CheckOut handles closing a receipt
func (h *ReceiptHandler) CheckOut(c *cli.Context) error {
	if err := h.receiptService.CheckOut(c.Context, c.Uint("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt checked out successfully", nil)
}

// Total handles computing the amount to pay for a receipt
func (h *ReceiptHandler) Total(c *cli.Context) error {
	id := c.Uint("id")
	total, err := h.receiptService.ToPay(c.Context, id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt total computed successfully", ReceiptTotal{ReceiptID: id, Total: total})
}

// Details handles listing a receipt's line items
func (h *ReceiptHandler) Details(c *cli.Context) error {
	details, err := h.receiptService.GetReceiptDetails(c.Context, c.Uint("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt details retrieved successfully", details)
}

// Period handles listing receipts within an inclusive date range
func (h *ReceiptHandler) Period(c *cli.Context) error {
	receipts, err := h.receiptService.GetReceiptsByPeriod(c.Context, GetDate(c, "from"), GetPeriodEnd(c, "to"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipts retrieved successfully", receipts)
}

// Delete handles deleting a receipt together with its line items
func (h *ReceiptHandler) Delete(c *cli.Context) error {
	if err := h.receiptService.DeleteReceipt(c.Context, c.Uint("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt deleted successfully", nil)
}
