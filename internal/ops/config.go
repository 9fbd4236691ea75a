package ops

import (
	"os"
	"strings"

	"main/internal/fix"
	"main/internal/marketdata"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Executor ExecutorConfig `json:"executor"`
	Quotes   []QuoteConfig  `json:"quotes"`
}

// ExecutorConfig carries the business settings of the counterparty core.
type ExecutorConfig struct {
	// ValidOrderTypes is a comma-separated list of order-type codes.
	// Empty means limit-only.
	ValidOrderTypes string `json:"validOrderTypes"`

	// AlwaysFillLimitOrders fills limit orders at their own limit price
	// regardless of market data.
	AlwaysFillLimitOrders bool `json:"alwaysFillLimitOrders"`

	// DefaultMarketPrice is a fixed quote used as both bid and ask when no
	// richer provider is installed. Empty disables it.
	DefaultMarketPrice string `json:"defaultMarketPrice"`
}

// QuoteConfig seeds the quote table used by the demo runner.
type QuoteConfig struct {
	Symbol string `json:"symbol"`
	Bid    string `json:"bid"`
	Ask    string `json:"ask"`
}

// Loaded is the resolved configuration, immutable after Load.
type Loaded struct {
	ValidOrderTypes       map[fix.OrdType]struct{}
	AlwaysFillLimitOrders bool
	DefaultMarketPrice    *decimal.Decimal
	Quotes                map[string]marketdata.Quote
}

// Load reads a JSON config file and resolves it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read config")
	}
	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "unmarshal config")
	}
	return Resolve(cfg)
}

// Resolve turns the raw file layout into the resolved form. The order-type
// whitelist is never empty afterwards.
func Resolve(cfg FileConfig) (Loaded, error) {
	validTypes, err := parseOrderTypes(cfg.Executor.ValidOrderTypes)
	if err != nil {
		return Loaded{}, err
	}

	var defaultPrice *decimal.Decimal
	if raw := strings.TrimSpace(cfg.Executor.DefaultMarketPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "parse DefaultMarketPrice")
		}
		if price.Sign() < 0 {
			return Loaded{}, errors.New("DefaultMarketPrice must not be negative")
		}
		defaultPrice = &price
	}

	quotes := make(map[string]marketdata.Quote, len(cfg.Quotes))
	for _, q := range cfg.Quotes {
		symbol := strings.TrimSpace(q.Symbol)
		if symbol == "" {
			return Loaded{}, errors.New("quote entry missing symbol")
		}
		bid, err := decimal.NewFromString(strings.TrimSpace(q.Bid))
		if err != nil {
			return Loaded{}, errors.Wrap(err, "parse quote bid")
		}
		ask, err := decimal.NewFromString(strings.TrimSpace(q.Ask))
		if err != nil {
			return Loaded{}, errors.Wrap(err, "parse quote ask")
		}
		quotes[symbol] = marketdata.Quote{Bid: bid, Ask: ask}
	}

	loaded := Loaded{
		ValidOrderTypes:       validTypes,
		AlwaysFillLimitOrders: cfg.Executor.AlwaysFillLimitOrders,
		DefaultMarketPrice:    defaultPrice,
		Quotes:                quotes,
	}

	if _, ok := validTypes[fix.OrdTypeMarket]; ok && defaultPrice == nil && len(quotes) == 0 {
		logs.Warn("market orders are whitelisted but no market data capability is configured; they will be rejected")
	}
	return loaded, nil
}

// parseOrderTypes splits a comma-separated code list. Empty input falls back
// to limit-only.
func parseOrderTypes(raw string) (map[fix.OrdType]struct{}, error) {
	types := make(map[fix.OrdType]struct{})
	raw = strings.TrimSpace(raw)
	if raw == "" {
		types[fix.OrdTypeLimit] = struct{}{}
		return types, nil
	}
	for _, part := range strings.Split(raw, ",") {
		code := strings.TrimSpace(part)
		if len(code) != 1 {
			return nil, errors.Errorf("invalid order type code: %q", code)
		}
		types[fix.OrdType(code[0])] = struct{}{}
	}
	return types, nil
}

// MarketData builds the provider implied by configuration. A provider
// installed programmatically wins; DefaultMarketPrice is then ignored with
// a warning. Returns nil when no capability exists.
func (l Loaded) MarketData(programmatic marketdata.Provider) marketdata.Provider {
	if programmatic != nil {
		if l.DefaultMarketPrice != nil {
			logs.Warn("ignoring DefaultMarketPrice since provider is already defined")
		}
		return programmatic
	}
	if l.DefaultMarketPrice != nil {
		return marketdata.NewFixed(*l.DefaultMarketPrice)
	}
	return nil
}
