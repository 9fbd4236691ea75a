package exec

import (
	"errors"
	"testing"

	"main/internal/fix"
	"main/pkg/exception"
)

func TestValidateRejectsUnlistedOrderType(t *testing.T) {
	v := NewValidator(map[fix.OrdType]struct{}{fix.OrdTypeLimit: {}}, true)

	err := v.Validate(fix.NewOrderSingle{ClOrdID: "c-1", OrdType: fix.OrdTypeMarket})
	if !errors.Is(err, exception.ErrInvalidOrderType) {
		t.Fatalf("want ErrInvalidOrderType, got %+v", err)
	}
}

func TestValidateRejectsMarketOrderWithoutMarketData(t *testing.T) {
	v := NewValidator(map[fix.OrdType]struct{}{fix.OrdTypeLimit: {}, fix.OrdTypeMarket: {}}, false)

	err := v.Validate(fix.NewOrderSingle{ClOrdID: "c-2", OrdType: fix.OrdTypeMarket})
	if !errors.Is(err, exception.ErrMissingMarketPrice) {
		t.Fatalf("want ErrMissingMarketPrice, got %+v", err)
	}
}

func TestValidateAcceptsWhitelistedTypes(t *testing.T) {
	v := NewValidator(map[fix.OrdType]struct{}{fix.OrdTypeLimit: {}, fix.OrdTypeMarket: {}}, true)

	if err := v.Validate(fix.NewOrderSingle{OrdType: fix.OrdTypeLimit}); err != nil {
		t.Fatalf("limit order should pass, got %+v", err)
	}
	if err := v.Validate(fix.NewOrderSingle{OrdType: fix.OrdTypeMarket}); err != nil {
		t.Fatalf("market order should pass, got %+v", err)
	}
}

func TestValidatorEmptyWhitelistDefaultsToLimitOnly(t *testing.T) {
	v := NewValidator(nil, true)

	if err := v.Validate(fix.NewOrderSingle{OrdType: fix.OrdTypeLimit}); err != nil {
		t.Fatalf("limit order should pass, got %+v", err)
	}
	if err := v.Validate(fix.NewOrderSingle{OrdType: fix.OrdTypeMarket}); err == nil {
		t.Fatal("market order should be rejected by the default whitelist")
	}
}
