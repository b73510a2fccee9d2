package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/cali/internal/filex"
	"github.com/dmitrijs2005/cali/internal/logging"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	Backends   = []string{BackendJSON, BackendSQLite}
	ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// fallbackDataDir is used when no home directory can be resolved.
const fallbackDataDir = "data"

// Config holds runtime settings for the cali CLI.
type Config struct {
	DataDir  string
	Backend  string
	Color    string
	LogLevel string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	dir, err := filex.DefaultDataDir()
	if err != nil {
		dir = fallbackDataDir
	}
	c.DataDir = dir
	c.Backend = BackendJSON
	c.Color = ColorAuto
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the environment, then the JSON file
// named by -c/-config in args. Flags are applied later by the caller's
// FlagSet via BindFlags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("data dir must not be empty"))
	}
	if !slices.Contains(Backends, c.Backend) {
		errs = append(errs, fmt.Errorf("invalid backend %q: must be one of %s", c.Backend, strings.Join(Backends, ", ")))
	}
	if !slices.Contains(ColorModes, c.Color) {
		errs = append(errs, fmt.Errorf("invalid color mode %q: must be one of %s", c.Color, strings.Join(ColorModes, ", ")))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
