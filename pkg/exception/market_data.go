package exception

import "github.com/yanun0323/errors"

var (
	ErrNoMarketDataProvider = errors.New("market data: no provider configured")
)
