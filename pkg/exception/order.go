package exception

import "github.com/yanun0323/errors"

// Order validation errors. The protocol engine translates these into
// business-level rejects; this core never answers a rejected order.
var (
	ErrInvalidOrderType   = errors.New("order: type not in valid order types")
	ErrMissingMarketPrice = errors.New("order: no market price source for market order")
	ErrInvalidSide        = errors.New("order: invalid side")
)
