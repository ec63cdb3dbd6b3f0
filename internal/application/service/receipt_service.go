package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
)

// ReceiptService prices and maintains receipt line items and handles checkout
type ReceiptService struct {
	uow repository.UnitOfWork
}

// NewReceiptService creates a new receipt service
func NewReceiptService(uow repository.UnitOfWork) *ReceiptService {
	return &ReceiptService{uow: uow}
}

// ReceiptItemInput represents an initial line on a new receipt
type ReceiptItemInput struct {
	ProductID uint `validate:"required"`
	Quantity  int  `validate:"gt=0"`
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	CustomerID    uint `validate:"required"`
	OperationDate time.Time
	Items         []ReceiptItemInput `validate:"dive"`
}

// UpdateReceiptInput represents the update receipt input. Nil fields are left unchanged.
type UpdateReceiptInput struct {
	ID            uint `validate:"required"`
	CustomerID    *uint
	OperationDate *time.Time
}

// CreateReceipt opens a receipt for an existing customer. Initial items are
// priced like AddProduct and merged per product.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var created *entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		customer, err := repos.Customers.GetByID(ctx, input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("customer")
		}

		receipt := &entity.Receipt{
			CustomerID:    customer.ID,
			OperationDate: input.OperationDate,
		}
		if receipt.OperationDate.IsZero() {
			receipt.OperationDate = time.Now().UTC()
		}
		if err := repos.Receipts.Add(ctx, receipt); err != nil {
			return err
		}
		receipt.Customer = customer

		for _, item := range input.Items {
			if err := addLineItem(ctx, repos, receipt, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		created, err = repos.Receipts.GetByIDWithDetails(ctx, receipt.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"receipt_id":  created.ID,
		"customer_id": created.CustomerID,
	}).Info("Receipt created")
	return created, nil
}

// AddProduct adds quantity units of a product to a receipt. A product already
// on the receipt has its quantity increased and keeps its frozen prices.
func (s *ReceiptService) AddProduct(ctx context.Context, receiptID, productID uint, quantity int) error {
	if quantity <= 0 {
		return apperror.ErrInvalidQuantity
	}

	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := findReceiptWithDetails(ctx, repos, receiptID)
		if err != nil {
			return err
		}
		return addLineItem(ctx, repos, receipt, productID, quantity)
	})
}

// addLineItem merges into the receipt's existing line for productID or
// creates a new one priced from the current product and customer discount.
// The receipt's in-memory line items are kept in step with storage.
func addLineItem(ctx context.Context, repos *repository.Repositories, receipt *entity.Receipt, productID uint, quantity int) error {
	logger := log.WithFields(log.Fields{
		"receipt_id": receipt.ID,
		"product_id": productID,
		"quantity":   quantity,
	})

	if detail := receipt.FindDetail(productID); detail != nil {
		detail.Quantity += quantity
		if err := repos.ReceiptDetails.Update(ctx, detail); err != nil {
			return err
		}
		logger.WithField("line_quantity", detail.Quantity).Debug("Line item merged")
		return nil
	}

	product, err := repos.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("product")
	}
	if receipt.Customer == nil {
		return apperror.NewNotFoundError("customer")
	}

	detail := entity.ReceiptDetail{
		ReceiptID:         receipt.ID,
		ProductID:         product.ID,
		UnitPrice:         product.Price,
		DiscountUnitPrice: receipt.Customer.DiscountedPrice(product.Price),
		Quantity:          quantity,
	}
	if err := repos.ReceiptDetails.Add(ctx, &detail); err != nil {
		return err
	}
	receipt.ReceiptDetails = append(receipt.ReceiptDetails, detail)

	logger.WithField("discount_unit_price", detail.DiscountUnitPrice.StringFixed(2)).Debug("Line item added")
	return nil
}

// RemoveProduct takes quantity units of a product off a receipt. A line whose
// quantity drops to zero or below is deleted. Removing a product that is not
// on the receipt does nothing.
func (s *ReceiptService) RemoveProduct(ctx context.Context, receiptID, productID uint, quantity int) error {
	if quantity <= 0 {
		return apperror.ErrInvalidQuantity
	}

	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := findReceiptWithDetails(ctx, repos, receiptID)
		if err != nil {
			return err
		}

		detail := receipt.FindDetail(productID)
		if detail == nil {
			return nil
		}

		logger := log.WithFields(log.Fields{
			"receipt_id": receiptID,
			"product_id": productID,
			"quantity":   quantity,
		})

		detail.Quantity -= quantity
		if detail.Quantity <= 0 {
			if err := repos.ReceiptDetails.Delete(ctx, detail); err != nil {
				return err
			}
			logger.Debug("Line item deleted")
			return nil
		}

		if err := repos.ReceiptDetails.Update(ctx, detail); err != nil {
			return err
		}
		logger.WithField("line_quantity", detail.Quantity).Debug("Line item reduced")
		return nil
	})
}

// ToPay returns the payable total of a receipt: the sum of
// quantity * discountUnitPrice over its line items.
func (s *ReceiptService) ToPay(ctx context.Context, receiptID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := findReceiptWithDetails(ctx, repos, receiptID)
		if err != nil {
			return err
		}
		total = receipt.Total()
		return nil
	})
	return total, err
}

// CheckOut marks a receipt as checked out
func (s *ReceiptService) CheckOut(ctx context.Context, receiptID uint) error {
	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := repos.Receipts.GetByID(ctx, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return apperror.NewNotFoundError("receipt")
		}

		receipt.IsCheckedOut = true
		if err := repos.Receipts.Update(ctx, receipt); err != nil {
			return err
		}

		log.WithField("receipt_id", receiptID).Info("Receipt checked out")
		return nil
	})
}

// GetReceipt retrieves a receipt with its customer and line items
func (s *ReceiptService) GetReceipt(ctx context.Context, id uint) (*entity.Receipt, error) {
	var receipt *entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		receipt, err = findReceiptWithDetails(ctx, repos, id)
		return err
	})
	return receipt, err
}

// ListReceipts lists every receipt with its details
func (s *ReceiptService) ListReceipts(ctx context.Context) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		receipts, err = repos.Receipts.GetAllWithDetails(ctx)
		return err
	})
	return receipts, err
}

// GetReceiptDetails returns the line items of a receipt
func (s *ReceiptService) GetReceiptDetails(ctx context.Context, receiptID uint) ([]entity.ReceiptDetail, error) {
	receipt, err := s.GetReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	return receipt.ReceiptDetails, nil
}

// GetReceiptsByPeriod lists receipts whose operation date lies in
// [startDate, endDate]
func (s *ReceiptService) GetReceiptsByPeriod(ctx context.Context, startDate, endDate time.Time) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		receipts, err = repos.Receipts.ListWithDetails(ctx, &repository.ReceiptFilterParams{
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		return err
	})
	return receipts, err
}

// UpdateReceipt changes a receipt's customer or operation date
func (s *ReceiptService) UpdateReceipt(ctx context.Context, input *UpdateReceiptInput) (*entity.Receipt, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := repos.Receipts.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return apperror.NewNotFoundError("receipt")
		}

		if input.CustomerID != nil {
			customer, err := repos.Customers.GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("customer")
			}
			receipt.CustomerID = customer.ID
		}
		if input.OperationDate != nil {
			receipt.OperationDate = *input.OperationDate
		}

		if err := repos.Receipts.Update(ctx, receipt); err != nil {
			return err
		}
		updated = receipt
		return nil
	})
	return updated, err
}

// DeleteReceipt deletes a receipt together with all of its line items
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		receipt, err := findReceiptWithDetails(ctx, repos, id)
		if err != nil {
			return err
		}

		for i := range receipt.ReceiptDetails {
			if err := repos.ReceiptDetails.Delete(ctx, &receipt.ReceiptDetails[i]); err != nil {
				return err
			}
		}

		if err := repos.Receipts.DeleteByID(ctx, id); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"receipt_id": id,
			"lines":      len(receipt.ReceiptDetails),
		}).Info("Receipt deleted")
		return nil
	})
}

func findReceiptWithDetails(ctx context.Context, repos *repository.Repositories, id uint) (*entity.Receipt, error) {
	receipt, err := repos.Receipts.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("receipt")
	}
	return receipt, nil
}
