package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// exchangeRateKeyInfix joins the two currency codes of an ExchangeRateKey.
const exchangeRateKeyInfix = "_TO_"

// RateTable maps an ExchangeRateKey to its rate.
type RateTable map[string]decimal.Decimal

// NormalizeCurrencyCode trims surrounding whitespace and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ExchangeRateKey builds the directional lookup key for a currency pair,
// e.g. ("usd", "eur") -> "USD_TO_EUR".
func ExchangeRateKey(sourceCurrency, targetCurrency string) string {
	return fmt.Sprintf("%s%s%s",
		NormalizeCurrencyCode(sourceCurrency),
		exchangeRateKeyInfix,
		NormalizeCurrencyCode(targetCurrency),
	)
}
