package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ConversionRequest is a single inbound conversion call.
type ConversionRequest struct {
	SourceCurrency string
	TargetCurrency string
	Amount         decimal.Decimal
}

// Validate checks that both currency codes are present and the amount is positive.
func (r ConversionRequest) Validate() error {
	if strings.TrimSpace(r.SourceCurrency) == "" {
		return fmt.Errorf("%w: source currency is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(r.TargetCurrency) == "" {
		return fmt.Errorf("%w: target currency is required", apperrors.ErrValidation)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return nil
}

// Conversion is the outcome of converting an amount with a resolved rate.
type Conversion struct {
	SourceCurrency  string
	TargetCurrency  string
	Amount          decimal.Decimal
	ExchangeRate    decimal.Decimal
	ConvertedAmount decimal.Decimal
}

// NewConversion applies rate to the request amount.
func NewConversion(req ConversionRequest, rate decimal.Decimal) Conversion {
	return Conversion{
		SourceCurrency:  NormalizeCurrencyCode(req.SourceCurrency),
		TargetCurrency:  NormalizeCurrencyCode(req.TargetCurrency),
		Amount:          req.Amount,
		ExchangeRate:    rate,
		ConvertedAmount: req.Amount.Mul(rate),
	}
}
