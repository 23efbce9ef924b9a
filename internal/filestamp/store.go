package filestamp

import (
	"slices"
	"strings"
	"sync"
)

// ResultStore collects accepted records from concurrent workers using a mutex.
// It is append-only until frozen and read-only afterwards.
type ResultStore struct {
	mu      sync.Mutex // Protect concurrent access
	records []FileRecord
	frozen  bool
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{records: make([]FileRecord, 0)}
}

// Append adds a record. It fails once the store is frozen.
func (s *ResultStore) Append(r FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrStoreFrozen
	}

	s.records = append(s.records, r)

	return nil
}

// Len returns the number of accepted records.
func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Freeze stops further appends and returns a snapshot in arrival order.
func (s *ResultStore) Freeze() []FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frozen = true

	return slices.Clone(s.records)
}

// Snapshot returns a copy of the records in arrival order without freezing.
func (s *ResultStore) Snapshot() []FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// SortRecords orders records ascending by the timestamp selected by key.
// The sort is stable: records with equal timestamps keep their relative order.
func SortRecords(records []FileRecord, key SortKey) {
	slices.SortStableFunc(records, func(a, b FileRecord) int {
		return strings.Compare(a.Timestamp(key), b.Timestamp(key))
	})
}
