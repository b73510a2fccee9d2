package config

import (
	"flag"
	"strings"
)

// BindFlags registers the global options on fs. Current field values become
// the flag defaults, so only flags present on the command line change cfg.
//
//	-c, -config string   path to a JSON config file (read by LoadConfig)
//	-data-dir string     directory holding the data file
//	-backend string      storage backend: json | sqlite
//	-color string        colour output: auto | always | never
//	-log-level string    diagnostics level on stderr
func (c *Config) BindFlags(fs *flag.FlagSet) {
	var ignored string
	fs.StringVar(&ignored, "config", "", "path to a JSON config file")
	fs.StringVar(&ignored, "c", "", "path to a JSON config file (shorthand)")

	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory holding the nutrition data")
	fs.StringVar(&c.Backend, "backend", c.Backend, "storage backend: "+strings.Join(Backends, " | "))
	fs.StringVar(&c.Color, "color", c.Color, "colour output: "+strings.Join(ColorModes, " | "))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "diagnostics level: debug | info | warn | error")
}
