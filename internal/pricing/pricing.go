// Package pricing computes cart totals with decimal arithmetic.
package pricing

import (
	"langnghe/internal/models"

	"github.com/shopspring/decimal"
)

// ShippingCost is the flat shipping fee in VND, charged once per order.
var ShippingCost = decimal.NewFromInt(30000)

// Summary is the money view of a cart. Amounts marshal as JSON strings.
type Summary struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// LineTotal is the effective price of the product times quantity.
func LineTotal(p models.Product, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(p.EffectivePrice()).Mul(decimal.NewFromInt(int64(quantity)))
}

// Summarize totals the cart items. Rows without a product are ignored.
func Summarize(items []models.CartItem) Summary {
	s := Summary{
		Subtotal: decimal.Zero,
		Shipping: ShippingCost,
	}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		s.Items += item.Quantity
		s.Subtotal = s.Subtotal.Add(LineTotal(*item.Product, item.Quantity))
	}
	s.Total = s.Subtotal.Add(s.Shipping)
	return s
}
