package marketdata

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Generator produces synthetic quotes around a base price, one symbol per
// step in round-robin order. It exists so the demo runner and tests have a
// provider richer than a single fixed price.
type Generator struct {
	symbols []string
	base    decimal.Decimal
	spread  decimal.Decimal
	step    decimal.Decimal
	index   int
}

// NewGenerator creates a generator over the given symbols. Spread is the
// half-distance between bid and ask; step nudges the mid price per tick.
func NewGenerator(symbols []string, base, spread, step decimal.Decimal) (*Generator, error) {
	if len(symbols) == 0 {
		return nil, errors.New("generator has no symbols")
	}
	if base.Sign() <= 0 {
		return nil, errors.New("generator base price must be positive")
	}
	if spread.Sign() < 0 {
		spread = decimal.Zero
	}
	return &Generator{
		symbols: symbols,
		base:    base,
		spread:  spread,
		step:    step,
	}, nil
}

// Next returns the next symbol and quote in sequence.
func (g *Generator) Next() (string, Quote) {
	symbol := g.symbols[g.index%len(g.symbols)]
	mid := g.base.Add(g.step.Mul(decimal.NewFromInt(int64(g.index % 8))))
	g.index++
	return symbol, Quote{
		Bid: mid.Sub(g.spread),
		Ask: mid.Add(g.spread),
	}
}

// Feed advances the generator n times, writing each quote into the table.
func (g *Generator) Feed(table *Table, n int) {
	for i := 0; i < n; i++ {
		symbol, q := g.Next()
		table.SetQuote(symbol, q)
	}
}
