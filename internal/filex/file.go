// Package filex resolves and prepares the directory cali keeps its data in.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory name under the data home.
const AppDirName = "cali"

// DefaultDataDir returns $XDG_DATA_HOME/cali, falling back to
// ~/.local/share/cali.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}

	return filepath.Join(home, ".local", "share", AppDirName), nil
}

// EnsureDir creates dir (and parents) if it does not exist yet and returns
// its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
