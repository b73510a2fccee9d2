package store

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/cali/internal/nutrition"
)

// MemoryStore keeps the collection in process. LoadErr and SaveErr, when set,
// are returned by the matching call.
type MemoryStore struct {
	records []nutrition.DailyRecord
	saves   int

	LoadErr error
	SaveErr error
}

func NewMemoryStore(records ...nutrition.DailyRecord) *MemoryStore {
	return &MemoryStore{records: slices.Clone(records)}
}

func (m *MemoryStore) Load(_ context.Context) ([]nutrition.DailyRecord, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := slices.Clone(m.records)
	if out == nil {
		out = []nutrition.DailyRecord{}
	}
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, records []nutrition.DailyRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.records = slices.Clone(records)
	m.saves++
	return nil
}

// Records returns a copy of what was last saved.
func (m *MemoryStore) Records() []nutrition.DailyRecord {
	return slices.Clone(m.records)
}

// Saves counts successful Save calls.
func (m *MemoryStore) Saves() int {
	return m.saves
}

func (m *MemoryStore) Close() error {
	return nil
}
