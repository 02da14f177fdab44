package main

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert SOURCE TARGET AMOUNT",
		Short:   "Convert an amount once and print the result as JSON",
		Example: "  currency_converter convert USD EUR 100",
		Args:    cobra.ExactArgs(3),
		RunE:    runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, _, container, err := bootstrap()
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("amount %q is not a number", args[2])
	}

	conv, err := container.CurrencyConverter.Convert(cmd.Context(), domain.ConversionRequest{
		SourceCurrency: args[0],
		TargetCurrency: args[1],
		Amount:         amount,
	})
	if err != nil {
		return err
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(dto.ToConversionResponse(conv))
}
