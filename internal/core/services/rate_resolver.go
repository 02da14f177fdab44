package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/logger"
	"github.com/shopspring/decimal"
)

// rateResolver combines configured overrides with the default rate table.
type rateResolver struct {
	overrides portsrepo.RateSource
	defaults  portsrepo.RateSource
}

// NewRateResolver creates a resolver that prefers overrides and falls back to defaults.
func NewRateResolver(overrides, defaults portsrepo.RateSource) portssvc.RateResolverSvc {
	return &rateResolver{
		overrides: overrides,
		defaults:  defaults,
	}
}

// ResolveRate implements portssvc.RateResolverSvc.
func (r *rateResolver) ResolveRate(ctx context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, error) {
	key := domain.ExchangeRateKey(sourceCurrency, targetCurrency)

	rate, found, err := r.overrides.LookupRate(ctx, key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up configured rate %s: %w", key, err)
	}
	if !found {
		rate, err = r.defaultRate(ctx, key)
		if err != nil {
			return decimal.Zero, err
		}
	}

	logger.FromContext(ctx).Info("Exchange rate resolved",
		slog.String("source_currency", sourceCurrency),
		slog.String("target_currency", targetCurrency),
		slog.String("exchange_rate", rate.String()),
	)
	return rate, nil
}

// defaultRate reads key from the rate table; an unknown pair resolves to zero.
func (r *rateResolver) defaultRate(ctx context.Context, key string) (decimal.Decimal, error) {
	rate, found, err := r.defaults.LookupRate(ctx, key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up default rate %s: %w", key, err)
	}
	if !found {
		logger.FromContext(ctx).Error("Exchange rate not found in the rate file", slog.String("key", key))
		return decimal.Zero, nil
	}
	return rate, nil
}
