package domain_test

import (
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRateKey(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   string
	}{
		{name: "upper case codes", source: "USD", target: "EUR", want: "USD_TO_EUR"},
		{name: "lower case codes are upper-cased", source: "usd", target: "eur", want: "USD_TO_EUR"},
		{name: "surrounding whitespace is trimmed", source: " gbp ", target: "jpy\t", want: "GBP_TO_JPY"},
		{name: "direction matters", source: "EUR", target: "USD", want: "EUR_TO_USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExchangeRateKey(tt.source, tt.target))
		})
	}
}

func TestConversionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.ConversionRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  domain.ConversionRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: decimal.NewFromInt(100)},
		},
		{
			name:    "empty source currency",
			req:     domain.ConversionRequest{SourceCurrency: "", TargetCurrency: "EUR", Amount: decimal.NewFromInt(100)},
			wantErr: true,
		},
		{
			name:    "blank target currency",
			req:     domain.ConversionRequest{SourceCurrency: "USD", TargetCurrency: "   ", Amount: decimal.NewFromInt(100)},
			wantErr: true,
		},
		{
			name:    "zero amount",
			req:     domain.ConversionRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "negative amount",
			req:     domain.ConversionRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: decimal.RequireFromString("-0.01")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewConversion_UsesDecimalArithmetic(t *testing.T) {
	req := domain.ConversionRequest{
		SourceCurrency: "usd",
		TargetCurrency: "eur",
		Amount:         decimal.RequireFromString("0.1"),
	}
	rate := decimal.RequireFromString("0.3")

	conv := domain.NewConversion(req, rate)

	assert.Equal(t, "USD", conv.SourceCurrency)
	assert.Equal(t, "EUR", conv.TargetCurrency)
	assert.True(t, conv.ExchangeRate.Equal(rate))
	// 0.1 * 0.3 drifts with float64; decimal gives the exact product.
	assert.Equal(t, "0.03", conv.ConvertedAmount.String())
}
