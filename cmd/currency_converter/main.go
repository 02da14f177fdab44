package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_converter/internal/adapters/ratesource"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/logger"
	"github.com/spf13/cobra"
)

// @title Currency Converter API
// @version 1.0
// @description Converts amounts between currencies using configured or file-based exchange rates.

// @host localhost:8080
// @BasePath /api
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "currency_converter",
		Short:        "Currency conversion API",
		Long:         `Serves GET /api/CurrencyConverter/convert, converting with configured overrides or the exchangeRates.json table.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newConvertCommand(),
	)
	return rootCmd
}

// bootstrap loads configuration and wires the logger and services shared by all commands.
func bootstrap() (*config.Config, *slog.Logger, *portssvc.ServiceContainer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{Format: cfg.LogFormat, Level: cfg.LogLevel})
	slog.SetDefault(log)

	overrides, err := config.LoadRateOverrides(cfg.RateOverridesFile)
	if err != nil {
		return nil, nil, nil, err
	}

	container := services.NewServiceContainer(
		ratesource.NewConfigRateSource(overrides),
		ratesource.NewOSFileRateStore(cfg.RatesFile),
	)
	return cfg, log, container, nil
}
