// Package marketdata supplies the bid/ask lookup the pricer consumes.
package marketdata

import "github.com/shopspring/decimal"

// Provider supplies the current bid/ask for a symbol. Implementations must
// be safe for concurrent readers; sessions query it in parallel.
type Provider interface {
	Ask(symbol string) decimal.Decimal
	Bid(symbol string) decimal.Decimal
}

// Fixed quotes every symbol at one static price on both sides. It backs the
// DefaultMarketPrice configuration key.
type Fixed struct {
	price decimal.Decimal
}

// NewFixed creates a fixed provider.
func NewFixed(price decimal.Decimal) Fixed {
	return Fixed{price: price}
}

func (f Fixed) Ask(string) decimal.Decimal { return f.price }

func (f Fixed) Bid(string) decimal.Decimal { return f.price }
