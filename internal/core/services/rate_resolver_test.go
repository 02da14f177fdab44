package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) LookupRate(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// --- Test Suite ---
type RateResolverTestSuite struct {
	suite.Suite
	overrides *MockRateSource
	defaults  *MockRateSource
	resolver  portssvc.RateResolverSvc
	ctx       context.Context
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.overrides = new(MockRateSource)
	suite.defaults = new(MockRateSource)
	suite.resolver = services.NewRateResolver(suite.overrides, suite.defaults)
	suite.ctx = context.Background()
}

func (suite *RateResolverTestSuite) TestResolveRate_OverrideWins() {
	override := decimal.RequireFromString("0.95")
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(override, true, nil).Once()

	rate, err := suite.resolver.ResolveRate(suite.ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(override))
	suite.overrides.AssertExpectations(suite.T())
	suite.defaults.AssertNotCalled(suite.T(), "LookupRate", mock.Anything, mock.Anything)
}

func (suite *RateResolverTestSuite) TestResolveRate_FallsBackToDefaults() {
	fileRate := decimal.RequireFromString("0.90")
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, nil).Once()
	suite.defaults.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(fileRate, true, nil).Once()

	rate, err := suite.resolver.ResolveRate(suite.ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(fileRate))
	suite.overrides.AssertExpectations(suite.T())
	suite.defaults.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolveRate_UnknownPairIsZero() {
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, nil).Once()
	suite.defaults.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, nil).Once()

	rate, err := suite.resolver.ResolveRate(suite.ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.IsZero())
}

func (suite *RateResolverTestSuite) TestResolveRate_NormalisesKey() {
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.NewFromInt(1), true, nil).Once()

	_, err := suite.resolver.ResolveRate(suite.ctx, "usd", " eur")

	suite.Require().NoError(err)
	suite.overrides.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolveRate_OverrideFailurePropagates() {
	failure := errors.Join(apperrors.ErrRateSource, errors.New("bad override"))
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, failure).Once()

	_, err := suite.resolver.ResolveRate(suite.ctx, "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrRateSource)
	suite.defaults.AssertNotCalled(suite.T(), "LookupRate", mock.Anything, mock.Anything)
}

func (suite *RateResolverTestSuite) TestResolveRate_DefaultsFailurePropagates() {
	suite.overrides.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, nil).Once()
	suite.defaults.On("LookupRate", suite.ctx, "USD_TO_EUR").Return(decimal.Zero, false, apperrors.ErrRateSource).Once()

	_, err := suite.resolver.ResolveRate(suite.ctx, "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrRateSource)
}

func TestRateResolver(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
