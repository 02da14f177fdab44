package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertCurrencyQuery binds the query string of the convert endpoint.
// Amount stays a string here so that a non-numeric value fails validation
// instead of binding.
type ConvertCurrencyQuery struct {
	SourceCurrency string `form:"sourceCurrency" binding:"required"`
	TargetCurrency string `form:"targetCurrency" binding:"required"`
	Amount         string `form:"amount" binding:"required,positive_decimal"`
}

// ToConversionRequest converts the bound query into a domain request.
func (q ConvertCurrencyQuery) ToConversionRequest() (domain.ConversionRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(q.Amount))
	if err != nil {
		return domain.ConversionRequest{}, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, q.Amount)
	}
	return domain.ConversionRequest{
		SourceCurrency: q.SourceCurrency,
		TargetCurrency: q.TargetCurrency,
		Amount:         amount,
	}, nil
}

// ConversionResponse is the success body of the convert endpoint.
type ConversionResponse struct {
	ExchangeRate    decimal.Decimal `json:"exchangeRate" swaggertype:"number"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount" swaggertype:"number"`
}

// MarshalJSON writes both values as JSON numbers rather than decimal's default quoted strings.
func (r ConversionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ExchangeRate    json.Number `json:"exchangeRate"`
		ConvertedAmount json.Number `json:"convertedAmount"`
	}{
		ExchangeRate:    json.Number(r.ExchangeRate.String()),
		ConvertedAmount: json.Number(r.ConvertedAmount.String()),
	})
}

// ToConversionResponse converts a domain.Conversion to a ConversionResponse DTO.
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ExchangeRate:    conv.ExchangeRate,
		ConvertedAmount: conv.ConvertedAmount,
	}
}
