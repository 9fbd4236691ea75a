package marketdata

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Quote is one two-sided price.
type Quote struct {
	Bid decimal.Decimal
	Ask decimal.Decimal
}

// Table is a concurrent quote table keyed by symbol. Unknown symbols quote
// zero on both sides.
type Table struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

// NewTable creates an empty quote table.
func NewTable() *Table {
	return &Table{quotes: make(map[string]Quote)}
}

// SetQuote installs or replaces the quote for a symbol.
func (t *Table) SetQuote(symbol string, q Quote) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quotes[symbol] = q
}

// Quote returns the current quote for a symbol.
func (t *Table) Quote(symbol string) (Quote, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	q, ok := t.quotes[symbol]
	return q, ok
}

func (t *Table) Ask(symbol string) decimal.Decimal {
	q, _ := t.Quote(symbol)
	return q.Ask
}

func (t *Table) Bid(symbol string) decimal.Decimal {
	q, _ := t.Quote(symbol)
	return q.Bid
}
