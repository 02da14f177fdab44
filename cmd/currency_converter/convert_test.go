package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exchangeRates.json"), []byte(`{"USD_TO_EUR": 0.90}`), 0o644))
	t.Setenv("RATES_FILE", "exchangeRates.json")
	t.Setenv("LOG_LEVEL", "error")

	out, err := runRoot(t, "convert", "USD", "EUR", "10")

	require.NoError(t, err)
	assert.JSONEq(t, `{"exchangeRate": 0.9, "convertedAmount": 9}`, out)
}

func TestConvertCommand_EnvironmentOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RATES_FILE", "exchangeRates.json")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("GBP_TO_USD", "1.25")

	out, err := runRoot(t, "convert", "gbp", "usd", "4")

	require.NoError(t, err)
	assert.JSONEq(t, `{"exchangeRate": 1.25, "convertedAmount": 5}`, out)
}

func TestConvertCommand_InvalidAmount(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	_, err := runRoot(t, "convert", "USD", "EUR", "0")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = runRoot(t, "convert", "USD", "EUR", "lots")
	assert.Error(t, err)
}
