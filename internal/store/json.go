package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cali/internal/filex"
	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/google/uuid"
)

// JSONFileName is the data file of the JSON backend.
const JSONFileName = "cali_data.json"

// JSONStore keeps the collection as a pretty-printed JSON array.
type JSONStore struct {
	path string
}

// NewJSONStore creates dir if needed and returns a store backed by
// dir/cali_data.json. The file itself is created on the first Save.
func NewJSONStore(dir string) (*JSONStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	return &JSONStore{path: filepath.Join(abs, JSONFileName)}, nil
}

// Path returns the data file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the data file. A missing file and a file that does not parse
// both yield an empty collection.
func (s *JSONStore) Load(_ context.Context) ([]nutrition.DailyRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []nutrition.DailyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []nutrition.DailyRecord
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		return []nutrition.DailyRecord{}, nil
	}
	return records, nil
}

// Save writes records to a temp file next to the data file and renames it
// into place.
func (s *JSONStore) Save(_ context.Context, records []nutrition.DailyRecord) error {
	if records == nil {
		records = []nutrition.DailyRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
