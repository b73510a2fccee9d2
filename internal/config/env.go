package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFile is loaded from the working directory when present. Variables that
// are already set in the process environment win over the file.
var envFile = ".env"

func parseEnv(cfg *Config) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	setFromEnv(&cfg.DataDir, "CALI_DATA_DIR")
	setFromEnv(&cfg.Backend, "CALI_BACKEND")
	setFromEnv(&cfg.Color, "CALI_COLOR")
	setFromEnv(&cfg.LogLevel, "CALI_LOG_LEVEL")
	return nil
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
