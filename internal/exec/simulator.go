package exec

import (
	"main/internal/fix"

	"github.com/shopspring/decimal"
)

// Simulator decides fill/no-fill at a resolved price and builds the ordered
// lifecycle events. Fills are all-or-nothing; partial fills are not modeled.
type Simulator struct {
	ids *IDSource
}

// NewSimulator creates a simulator drawing identifiers from ids.
func NewSimulator(ids *IDSource) Simulator {
	return Simulator{ids: ids}
}

// Simulate always returns the acknowledgement; fill is nil when the order
// does not execute at price. The ack and the fill each draw their own fresh
// order/exec identifier pair. The caller must transmit the ack first.
func (s Simulator) Simulate(order fix.NewOrderSingle, price decimal.Decimal) (ack fix.ExecutionReport, fill *fix.ExecutionReport) {
	ack = fix.ExecutionReport{
		OrderID:   formatID(s.ids.NextOrderID()),
		ExecID:    formatID(s.ids.NextExecID()),
		ExecType:  fix.ExecTypeNew,
		OrdStatus: fix.OrdStatusNew,
		Side:      order.Side,
		ClOrdID:   order.ClOrdID,
		Symbol:    order.Symbol,
		LeavesQty: order.OrderQty,
		CumQty:    decimal.Zero,
	}

	if !executable(order, price) {
		return ack, nil
	}

	f := fix.ExecutionReport{
		OrderID:   formatID(s.ids.NextOrderID()),
		ExecID:    formatID(s.ids.NextExecID()),
		ExecType:  fix.ExecTypeTrade,
		OrdStatus: fix.OrdStatusFilled,
		Side:      order.Side,
		ClOrdID:   order.ClOrdID,
		Symbol:    order.Symbol,
		OrderQty:  order.OrderQty,
		LeavesQty: decimal.Zero,
		CumQty:    order.OrderQty,
		LastQty:   order.OrderQty,
		LastPx:    price,
		AvgPx:     price,
	}
	return ack, &f
}

// executable applies the limit executability rule; market orders always
// execute. Ties execute on both sides.
func executable(order fix.NewOrderSingle, price decimal.Decimal) bool {
	if order.OrdType != fix.OrdTypeLimit {
		return true
	}
	cmp := price.Cmp(order.Price)
	switch {
	case order.Side == fix.SideBuy:
		return cmp <= 0
	case order.Side.IsSelling():
		return cmp >= 0
	default:
		return false
	}
}
