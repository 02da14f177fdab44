package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/logger"
)

// currencyConverterService converts amounts using rates from a RateResolverSvc.
type currencyConverterService struct {
	resolver portssvc.RateResolverSvc
}

// NewCurrencyConverterService creates a new currency converter service.
func NewCurrencyConverterService(resolver portssvc.RateResolverSvc) portssvc.CurrencyConverterSvc {
	return &currencyConverterService{resolver: resolver}
}

// Convert implements portssvc.CurrencyConverterSvc.
func (s *currencyConverterService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.Conversion, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Error("Invalid input parameters.", slog.String("error", err.Error()))
		return nil, err
	}

	rate, err := s.resolver.ResolveRate(ctx, req.SourceCurrency, req.TargetCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
	}

	conv := domain.NewConversion(req, rate)
	log.Info("Conversion successful",
		slog.String("source_currency", conv.SourceCurrency),
		slog.String("target_currency", conv.TargetCurrency),
		slog.String("amount", conv.Amount.String()),
		slog.String("exchange_rate", conv.ExchangeRate.String()),
		slog.String("converted_amount", conv.ConvertedAmount.String()),
	)
	return &conv, nil
}
