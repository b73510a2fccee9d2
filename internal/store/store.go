package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cali/internal/config"
	"github.com/dmitrijs2005/cali/internal/logging"
	"github.com/dmitrijs2005/cali/internal/nutrition"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store loads and saves the complete set of daily records.
type Store interface {
	// Load returns every stored record. A store that has never been written
	// yields an empty slice and no error.
	Load(ctx context.Context) ([]nutrition.DailyRecord, error)
	// Save replaces the stored collection with records.
	Save(ctx context.Context, records []nutrition.DailyRecord) error
	Close() error
}

// New opens the backend selected by cfg.Backend inside cfg.DataDir.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		s, err := NewJSONStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := NewSQLiteStore(ctx, cfg.DataDir, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
