package marketdata

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFixedQuotesSamePriceBothSides(t *testing.T) {
	f := NewFixed(decimal.RequireFromString("12.30"))

	if !f.Ask("EUR/USD").Equal(decimal.RequireFromString("12.30")) {
		t.Fatalf("ask wrong: %s", f.Ask("EUR/USD"))
	}
	if !f.Bid("ANY").Equal(decimal.RequireFromString("12.30")) {
		t.Fatalf("bid wrong: %s", f.Bid("ANY"))
	}
}

func TestTableQuotesBySymbol(t *testing.T) {
	table := NewTable()
	table.SetQuote("EUR/USD", Quote{
		Bid: decimal.RequireFromString("1.09"),
		Ask: decimal.RequireFromString("1.11"),
	})

	if !table.Bid("EUR/USD").Equal(decimal.RequireFromString("1.09")) {
		t.Fatalf("bid wrong: %s", table.Bid("EUR/USD"))
	}
	if !table.Ask("EUR/USD").Equal(decimal.RequireFromString("1.11")) {
		t.Fatalf("ask wrong: %s", table.Ask("EUR/USD"))
	}
}

func TestTableUnknownSymbolQuotesZero(t *testing.T) {
	table := NewTable()

	if !table.Ask("GBP/USD").IsZero() || !table.Bid("GBP/USD").IsZero() {
		t.Fatal("unknown symbol must quote zero")
	}
}

func TestTableConcurrentAccess(t *testing.T) {
	table := NewTable()
	quote := Quote{Bid: decimal.NewFromInt(9), Ask: decimal.NewFromInt(11)}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				table.SetQuote("EUR/USD", quote)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				ask := table.Ask("EUR/USD")
				if !ask.IsZero() && !ask.Equal(quote.Ask) {
					t.Error("torn read")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGeneratorRequiresSymbolsAndPositiveBase(t *testing.T) {
	if _, err := NewGenerator(nil, decimal.NewFromInt(10), decimal.Zero, decimal.Zero); err == nil {
		t.Fatal("want error for empty symbol list")
	}
	if _, err := NewGenerator([]string{"EUR/USD"}, decimal.Zero, decimal.Zero, decimal.Zero); err == nil {
		t.Fatal("want error for non-positive base")
	}
}

func TestGeneratorRoundRobinsSymbols(t *testing.T) {
	g, err := NewGenerator(
		[]string{"EUR/USD", "GBP/USD"},
		decimal.NewFromInt(100),
		decimal.RequireFromString("0.5"),
		decimal.Zero,
	)
	if err != nil {
		t.Fatalf("new generator, err: %+v", err)
	}

	first, q1 := g.Next()
	second, q2 := g.Next()
	third, _ := g.Next()
	if first != "EUR/USD" || second != "GBP/USD" || third != "EUR/USD" {
		t.Fatalf("round robin broken: %s %s %s", first, second, third)
	}
	if !q1.Bid.Equal(decimal.RequireFromString("99.5")) || !q1.Ask.Equal(decimal.RequireFromString("100.5")) {
		t.Fatalf("spread wrong: %+v", q1)
	}
	if q2.Ask.Cmp(q2.Bid) < 0 {
		t.Fatalf("crossed quote: %+v", q2)
	}
}

func TestGeneratorFeedsTable(t *testing.T) {
	g, err := NewGenerator([]string{"EUR/USD", "GBP/USD"}, decimal.NewFromInt(10), decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("new generator, err: %+v", err)
	}
	table := NewTable()
	g.Feed(table, 4)

	if table.Ask("EUR/USD").IsZero() || table.Ask("GBP/USD").IsZero() {
		t.Fatal("feed must populate every symbol")
	}
}
