package ratesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/platform/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

// DefaultRatesFile is the rate table read from the working directory when no other path is configured.
const DefaultRatesFile = "exchangeRates.json"

// FileRateStore reads a flat JSON object of ExchangeRateKey -> rate.
// The file is re-read on every lookup; nothing is cached.
type FileRateStore struct {
	fs   afero.Fs
	path string
}

// NewFileRateStore creates a FileRateStore reading path from fs.
func NewFileRateStore(fs afero.Fs, path string) *FileRateStore {
	if path == "" {
		path = DefaultRatesFile
	}
	return &FileRateStore{fs: fs, path: path}
}

// NewOSFileRateStore creates a FileRateStore backed by the operating system filesystem.
func NewOSFileRateStore(path string) *FileRateStore {
	return NewFileRateStore(afero.NewOsFs(), path)
}

// LoadRates reads and parses the rate file.
// A missing or malformed file yields a nil table and no error.
func (s *FileRateStore) LoadRates(ctx context.Context) (domain.RateTable, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrRateSource, s.path, err)
	}

	var table domain.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		logger.FromContext(ctx).Error("Error reading exchange rates from file",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return table, nil
}

// LookupRate implements repositories.RateSource.
func (s *FileRateStore) LookupRate(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	table, err := s.LoadRates(ctx)
	if err != nil {
		return decimal.Zero, false, err
	}
	rate, ok := table[key]
	return rate, ok, nil
}

var _ portsrepo.RateSource = (*FileRateStore)(nil)
