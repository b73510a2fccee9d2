package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []nutrition.DailyRecord {
	return []nutrition.DailyRecord{
		{Date: "2024-01-15", Calories: 1800, Water: 64, Protein: 90, Carbs: 200, Fat: 60},
		{Date: "2024-01-10", Calories: 2100.5, Water: 32.25, Protein: 110.4, Carbs: 0, Fat: 71},
	}
}

func TestJSONStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cali")

	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	assert.Equal(t, filepath.Join(dir, JSONFileName), s.Path())
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJSONStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	want := sampleRecords()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestJSONStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, sampleRecords()))
	require.NoError(t, s.Save(ctx, sampleRecords()[:1]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-15", got[0].Date)
}

func TestJSONStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), sampleRecords()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, JSONFileName, entries[0].Name())
}

func TestJSONStore_FileFormat(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), sampleRecords()[:1]))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	want := `[
  {
    "date": "2024-01-15",
    "calories": 1800,
    "water": 64,
    "protein": 90,
    "carbs": 200,
    "fat": 60
  }
]`
	assert.Equal(t, want, string(data))
}

func TestJSONStore_SaveNilWritesEmptyArray(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONStore_LoadAcceptsDecimalFloats(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	raw := `[{"date":"2024-01-15","calories":1800.0,"water":64.0,"protein":90.0,"carbs":200.0,"fat":60.0}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o600))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleRecords()[:1], got))
}

func TestJSONStore_MalformedFileIsEmpty(t *testing.T) {
	for _, raw := range []string{`{ not json`, `{"date":"2024-01-15"}`, `null`, ``} {
		t.Run(strings.TrimSpace(raw), func(t *testing.T) {
			s, err := NewJSONStore(t.TempDir())
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o600))

			got, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestJSONStore_LoadReadErrorSurfaces(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	// A directory where the file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(s.Path(), 0o700))

	_, err = s.Load(context.Background())
	require.Error(t, err)
}

func TestJSONStore_SaveErrorSurfaces(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	// Rename cannot replace a non-empty directory.
	require.NoError(t, os.MkdirAll(filepath.Join(s.Path(), "blocker"), 0o700))

	err = s.Save(context.Background(), sampleRecords())
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}
