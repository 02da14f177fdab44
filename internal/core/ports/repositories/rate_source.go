package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource answers rate lookups by ExchangeRateKey.
type RateSource interface {
	// LookupRate returns the rate stored under key. found is false when the
	// source has no entry for key; err is reserved for unexpected failures.
	LookupRate(ctx context.Context, key string) (rate decimal.Decimal, found bool, err error)
}
