package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves the effective rate for a currency pair.
type RateResolverSvc interface {
	// ResolveRate returns the configured override for the pair, falling back to
	// the rate file. A pair known to neither resolves to zero.
	ResolveRate(ctx context.Context, sourceCurrency, targetCurrency string) (decimal.Decimal, error)
}

// CurrencyConverterSvc converts amounts between currencies.
type CurrencyConverterSvc interface {
	// Convert validates req and applies the resolved rate to its amount.
	// Invalid input yields an error wrapping apperrors.ErrValidation.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.Conversion, error)
}
