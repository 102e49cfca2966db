package receiptservice

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/vmdanyliuk/receipta/internal/domain"
)

var (
	ErrNoItems        = errors.New("receipt must contain at least one item")
	ErrNegativeAmount = errors.New("price and quantity must not be negative")
)

// moneyScale is the fixed number of fractional digits for monetary values.
const moneyScale = 2

// CalculateTotals computes per-item totals and the grand total. Each line
// total is price * quantity rounded half-up to two decimals; the grand total
// is the exact sum of the rounded line totals. Input order is preserved.
func CalculateTotals(items []domain.ItemInput) ([]domain.LineItem, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, ErrNoItems
	}

	total := decimal.Zero
	lineItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if item.Price.IsNegative() || item.Quantity.IsNegative() {
			return nil, decimal.Zero, ErrNegativeAmount
		}
		lineTotal := item.Price.Mul(item.Quantity).Round(moneyScale)
		total = total.Add(lineTotal)
		lineItems = append(lineItems, domain.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    lineTotal,
		})
	}
	return lineItems, total, nil
}
