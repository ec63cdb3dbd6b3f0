package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/pkg/apperror"
)

// DateLayout is the layout accepted by every date flag
const DateLayout = "2006-01-02"

// GetDate returns the value of a timestamp flag, or the zero time when unset
func GetDate(c *cli.Context, name string) time.Time {
	if ts := c.Timestamp(name); ts != nil {
		return *ts
	}
	return time.Time{}
}

// GetPeriodEnd returns the last instant of the day given by a timestamp flag,
// so a date range includes receipts made during its final day.
func GetPeriodEnd(c *cli.Context, name string) time.Time {
	end := GetDate(c, name)
	if end.IsZero() {
		return end
	}
	return end.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// GetDecimal parses a decimal flag. ok is false when the flag is unset.
func GetDecimal(c *cli.Context, name string) (value decimal.Decimal, ok bool, err error) {
	if !c.IsSet(name) {
		return decimal.Zero, false, nil
	}
	value, err = decimal.NewFromString(c.String(name))
	if err != nil {
		return decimal.Zero, false, apperror.NewInvalidArgumentError("invalid " + name + ": " + c.String(name))
	}
	return value, true, nil
}

// ParseItems reads "productID:quantity" pairs. A bare product id means quantity 1.
func ParseItems(values []string) ([]service.ReceiptItemInput, error) {
	items := make([]service.ReceiptItemInput, 0, len(values))
	for _, v := range values {
		idPart, qtyPart, found := strings.Cut(v, ":")
		productID, err := strconv.ParseUint(strings.TrimSpace(idPart), 10, 0)
		if err != nil {
			return nil, apperror.NewInvalidArgumentError("invalid item: " + v)
		}
		quantity := 1
		if found {
			quantity, err = strconv.Atoi(strings.TrimSpace(qtyPart))
			if err != nil {
				return nil, apperror.NewInvalidArgumentError("invalid item: " + v)
			}
		}
		items = append(items, service.ReceiptItemInput{ProductID: uint(productID), Quantity: quantity})
	}
	return items, nil
}
