package ratesource

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ConfigRateSource looks rates up in a viper configuration (environment and
// an optional overrides file), keyed by ExchangeRateKey.
type ConfigRateSource struct {
	v *viper.Viper
}

// NewConfigRateSource wraps v. A nil v creates an empty instance.
func NewConfigRateSource(v *viper.Viper) *ConfigRateSource {
	if v == nil {
		v = viper.New()
	}
	return &ConfigRateSource{v: v}
}

// LookupRate implements repositories.RateSource.
// A value that is present but not a number is reported as an error.
func (s *ConfigRateSource) LookupRate(_ context.Context, key string) (decimal.Decimal, bool, error) {
	if !s.v.IsSet(key) {
		return decimal.Zero, false, nil
	}

	raw, err := cast.ToStringE(s.v.Get(key))
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: configured rate %s: %v", apperrors.ErrRateSource, key, err)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: configured rate %s=%q is not a decimal", apperrors.ErrRateSource, key, raw)
	}
	return rate, true, nil
}

var _ portsrepo.RateSource = (*ConfigRateSource)(nil)
