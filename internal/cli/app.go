package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cali/internal/config"
	"github.com/dmitrijs2005/cali/internal/logging"
	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/dmitrijs2005/cali/internal/report"
	"github.com/dmitrijs2005/cali/internal/store"
	"github.com/dmitrijs2005/cali/internal/tracker"
)

// App runs commands against one store.
type App struct {
	store    store.Store
	tracker  *tracker.Tracker
	reporter *report.Reporter
	log      logging.Logger
	out      io.Writer
}

// NewApp opens the store selected by cfg. Diagnostics go to errOut; command
// output goes to out.
func NewApp(ctx context.Context, cfg *config.Config, out, errOut io.Writer) (*App, error) {
	logger, err := logging.New(cfg.LogLevel, errOut)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	log := logger.With("backend", cfg.Backend)
	log.Debug(ctx, "config resolved", "data_dir", cfg.DataDir, "color", cfg.Color)

	s, err := store.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &App{
		store:    s,
		tracker:  tracker.New(nutrition.SystemClock),
		reporter: report.New(colorEnabled(cfg.Color, out)),
		log:      log,
		out:      out,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}

// Execute loads all records, applies cmd and saves when cmd mutates.
func (a *App) Execute(ctx context.Context, cmd Command) error {
	log := a.log.With("command", cmd.Kind.String())

	records, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	log.Debug(ctx, "records loaded", "count", len(records))

	var output string
	switch cmd.Kind {
	case KindLog:
		total := a.tracker.Log(&records, cmd.Category, cmd.Amount)
		output = a.reporter.Logged(cmd.Category, cmd.Amount, total)
	case KindReset:
		found := a.tracker.ResetToday(records)
		output = a.reporter.Reset(found)
	case KindSummary:
		date := cmd.Date
		if date == "" {
			date = a.tracker.Today()
		}
		output = a.reporter.Summary(records, date)
	case KindHistory:
		output = a.reporter.History(records)
	default:
		return fmt.Errorf("unsupported command %s", cmd.Kind)
	}

	if cmd.Mutates() {
		if err := a.store.Save(ctx, records); err != nil {
			return fmt.Errorf("save records: %w", err)
		}
		log.Debug(ctx, "records saved", "count", len(records))
	}

	_, err = fmt.Fprint(a.out, output)
	return err
}
