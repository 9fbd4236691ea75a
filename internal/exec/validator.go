package exec

import (
	"main/internal/fix"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// Validator enforces the configured order-type whitelist and the market
// order market-data requirement. It runs to completion before any outbound
// message is built; a rejected order produces zero outbound messages.
type Validator struct {
	validTypes    map[fix.OrdType]struct{}
	hasMarketData bool
}

// NewValidator creates a validator. An empty whitelist falls back to
// limit-only, so the set is never empty after initialization.
func NewValidator(validTypes map[fix.OrdType]struct{}, hasMarketData bool) Validator {
	if len(validTypes) == 0 {
		validTypes = map[fix.OrdType]struct{}{fix.OrdTypeLimit: {}}
	}
	return Validator{validTypes: validTypes, hasMarketData: hasMarketData}
}

// ValidTypes exposes the whitelist, read-only by convention.
func (v Validator) ValidTypes() map[fix.OrdType]struct{} {
	return v.validTypes
}

// Validate returns a sentinel from pkg/exception when the order is not
// acceptable.
func (v Validator) Validate(order fix.NewOrderSingle) error {
	if _, ok := v.validTypes[order.OrdType]; !ok {
		return errors.Wrap(exception.ErrInvalidOrderType, "validate order").
			With("clOrdID", order.ClOrdID)
	}
	if order.OrdType == fix.OrdTypeMarket && !v.hasMarketData {
		return errors.Wrap(exception.ErrMissingMarketPrice, "validate order").
			With("clOrdID", order.ClOrdID)
	}
	return nil
}
