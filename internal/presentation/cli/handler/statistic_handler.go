package handler

import (
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
)

// StatisticHandler handles reporting commands
type StatisticHandler struct {
	statisticService *service.StatisticService
}

// NewStatisticHandler creates a new statistic handler
func NewStatisticHandler(statisticService *service.StatisticService) *StatisticHandler {
	return &StatisticHandler{statisticService: statisticService}
}

// CategoryIncome is the payload of the category-income command
type CategoryIncome struct {
	CategoryID uint            `json:"category_id"`
	Income     decimal.Decimal `json:"income"`
}

// PopularProducts handles ranking products across all receipts
func (h *StatisticHandler) PopularProducts(c *cli.Context) error {
	products, err := h.statisticService.MostPopularProducts(c.Context, c.Int("n"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Most popular products retrieved successfully", products)
}

// CustomerProducts handles ranking products within one customer's receipts
func (h *StatisticHandler) CustomerProducts(c *cli.Context) error {
	products, err := h.statisticService.CustomerMostPopularProducts(c.Context, c.Uint("customer"), c.Int("n"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Customer's most popular products retrieved successfully", products)
}

// ValuableCustomers handles ranking customers by spend within a period
func (h *StatisticHandler) ValuableCustomers(c *cli.Context) error {
	customers, err := h.statisticService.MostValuableCustomers(c.Context, c.Int("n"), GetDate(c, "from"), GetPeriodEnd(c, "to"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Most valuable customers retrieved successfully", customers)
}

// CategoryIncome handles summing a category's income within a period
func (h *StatisticHandler) CategoryIncome(c *cli.Context) error {
	categoryID := c.Uint("category")
	income, err := h.statisticService.CategoryIncome(c.Context, categoryID, GetDate(c, "from"), GetPeriodEnd(c, "to"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, "Category income computed successfully", CategoryIncome{CategoryID: categoryID, Income: income})
}
