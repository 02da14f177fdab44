package services

import (
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
)

// NewServiceContainer wires the application services from the two rate sources:
// configured overrides are consulted first, the rate file second.
func NewServiceContainer(overrides, defaults portsrepo.RateSource) *portssvc.ServiceContainer {
	resolver := NewRateResolver(overrides, defaults)

	return &portssvc.ServiceContainer{
		RateResolver:      resolver,
		CurrencyConverter: NewCurrencyConverterService(resolver),
	}
}
