package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/cali/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir  string `json:"data_dir"`
	Backend  string `json:"backend"`
	Color    string `json:"color"`
	LogLevel string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.Color, jc.Color)
	overlay(&cfg.LogLevel, jc.LogLevel)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
