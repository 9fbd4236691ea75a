package exec

import (
	"main/internal/fix"
	"main/internal/marketdata"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Pricer resolves the price a simulated execution would print at. It is a
// pure function of the order, the configuration and one market-data query.
type Pricer struct {
	alwaysFillLimit bool
	provider        marketdata.Provider
}

// NewPricer creates a pricer. A nil provider means no market-data
// capability is configured.
func NewPricer(alwaysFillLimit bool, provider marketdata.Provider) Pricer {
	return Pricer{alwaysFillLimit: alwaysFillLimit, provider: provider}
}

// Resolve returns the execution price for the order. Limit orders priced
// under AlwaysFillLimitOrders take their own limit price and never touch
// market data.
func (p Pricer) Resolve(order fix.NewOrderSingle) (decimal.Decimal, error) {
	if order.OrdType == fix.OrdTypeLimit && p.alwaysFillLimit {
		return order.Price, nil
	}
	if p.provider == nil {
		return decimal.Zero, errors.Wrap(exception.ErrNoMarketDataProvider, "resolve price").
			With("clOrdID", order.ClOrdID)
	}
	switch {
	case order.Side == fix.SideBuy:
		return p.provider.Ask(order.Symbol), nil
	case order.Side.IsSelling():
		return p.provider.Bid(order.Symbol), nil
	default:
		return decimal.Zero, errors.Wrap(exception.ErrInvalidSide, "resolve price").
			With("side", string(order.Side))
	}
}
