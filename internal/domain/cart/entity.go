// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
)

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int             `json:"item_count"`     // Number of line items
	TotalQuantity int             `json:"total_quantity"` // Sum of all quantities
	Subtotal      decimal.Decimal `json:"subtotal"`       // Sum of price x quantity
}

// calculateTotals reduces the line items into totals. Unit prices arrive as
// floats from the commerce API; decimal arithmetic keeps the sum exact.
func calculateTotals(items []commerce.CartItem) Totals {
	totals := Totals{
		ItemCount: len(items),
		Subtotal:  decimal.Zero,
	}

	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		totals.Subtotal = totals.Subtotal.Add(line)
	}

	return totals
}
