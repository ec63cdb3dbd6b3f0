package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
)

// StatisticService computes read-only sales reports
type StatisticService struct {
	uow repository.UnitOfWork
}

// NewStatisticService creates a new statistic service
func NewStatisticService(uow repository.UnitOfWork) *StatisticService {
	return &StatisticService{uow: uow}
}

// CustomerActivity is a customer's revenue over a period
type CustomerActivity struct {
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	ReceiptSum   decimal.Decimal `json:"receipt_sum"`
}

// MostPopularProducts returns up to n distinct products ranked by the
// quantity of their line items across all receipts
func (s *StatisticService) MostPopularProducts(ctx context.Context, n int) ([]entity.Product, error) {
	return s.popularProducts(ctx, &repository.ReceiptDetailFilterParams{}, n)
}

// CustomerMostPopularProducts is MostPopularProducts restricted to the
// receipts of one customer
func (s *StatisticService) CustomerMostPopularProducts(ctx context.Context, customerID uint, n int) ([]entity.Product, error) {
	return s.popularProducts(ctx, &repository.ReceiptDetailFilterParams{CustomerID: &customerID}, n)
}

// popularProducts ranks individual line items by their own quantity, not by
// per-product sums. Equal quantities keep line item order.
func (s *StatisticService) popularProducts(ctx context.Context, filter *repository.ReceiptDetailFilterParams, n int) ([]entity.Product, error) {
	products := []entity.Product{}
	if n <= 0 {
		return products, nil
	}

	var details []entity.ReceiptDetail
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		details, err = repos.ReceiptDetails.ListWithDetails(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Quantity > details[j].Quantity
	})

	seen := make(map[uint]struct{}, n)
	for _, d := range details {
		if len(products) == n {
			break
		}
		if d.Product == nil {
			continue
		}
		if _, ok := seen[d.ProductID]; ok {
			continue
		}
		seen[d.ProductID] = struct{}{}
		products = append(products, *d.Product)
	}
	return products, nil
}

// MostValuableCustomers returns the n customers with the highest receipt
// revenue in [startDate, endDate], highest first
func (s *StatisticService) MostValuableCustomers(ctx context.Context, n int, startDate, endDate time.Time) ([]CustomerActivity, error) {
	activities := []CustomerActivity{}
	if n <= 0 {
		return activities, nil
	}

	var receipts []entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		receipts, err = repos.Receipts.ListWithDetails(ctx, &repository.ReceiptFilterParams{
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	index := make(map[uint]int)
	for i := range receipts {
		r := &receipts[i]
		pos, ok := index[r.CustomerID]
		if !ok {
			pos = len(activities)
			index[r.CustomerID] = pos
			activities = append(activities, CustomerActivity{
				CustomerID:   r.CustomerID,
				CustomerName: r.Customer.DisplayName(),
				ReceiptSum:   decimal.Zero,
			})
		}
		activities[pos].ReceiptSum = activities[pos].ReceiptSum.Add(r.Total())
	}

	sort.SliceStable(activities, func(i, j int) bool {
		if c := activities[i].ReceiptSum.Cmp(activities[j].ReceiptSum); c != 0 {
			return c > 0
		}
		return activities[i].CustomerID < activities[j].CustomerID
	})

	if len(activities) > n {
		activities = activities[:n]
	}
	return activities, nil
}

// CategoryIncome sums quantity * discountUnitPrice over line items of a
// category's products on receipts dated within [startDate, endDate]
func (s *StatisticService) CategoryIncome(ctx context.Context, categoryID uint, startDate, endDate time.Time) (decimal.Decimal, error) {
	var details []entity.ReceiptDetail
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		details, err = repos.ReceiptDetails.ListWithDetails(ctx, &repository.ReceiptDetailFilterParams{
			CategoryID: &categoryID,
			StartDate:  &startDate,
			EndDate:    &endDate,
		})
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	income := decimal.Zero
	for i := range details {
		income = income.Add(details[i].LineTotal())
	}
	return income, nil
}
