package store

import (
	"encoding/gob"
	"sort"
	"sync"
	"time"

	"github.com/nutrireco/go-reco-engine/model"
)

func init() {
	// Register value types that may appear inside model.Row
	// (map[string]interface{}) so gob snapshots round-trip.
	gob.Register([]interface{}{})
	gob.Register(map[string]interface{}{})
	gob.Register([]string{})
	gob.Register(float64(0))
	gob.Register(false)
}

// Dataset is one named, immutable preprocessed snapshot: the fetch metadata
// plus the aligned feature and meta tables derived from it.
type Dataset struct {
	Name       string             `json:"name"`
	Profile    string             `json:"profile"`
	ServiceID  string             `json:"service_id"`
	StartIdx   int                `json:"start_idx"`
	EndIdx     int                `json:"end_idx"`
	TotalCount int                `json:"total_count"` // rows the service reports overall
	FetchedAt  time.Time          `json:"fetched_at"`
	Features   model.FeatureTable `json:"features"`
	Meta       model.MetaTable    `json:"meta"`
}

// DatasetStore holds named datasets in memory. Datasets are immutable once
// stored; the store itself is safe for concurrent use.
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

// NewDatasetStore creates an empty store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{datasets: make(map[string]*Dataset)}
}

// Put stores a dataset under its name, replacing any previous entry.
func (s *DatasetStore) Put(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.Name] = ds
}

// Get returns the dataset under name, or false when absent.
func (s *DatasetStore) Get(name string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[name]
	return ds, ok
}

// Has reports whether a dataset exists under name.
func (s *DatasetStore) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.datasets[name]
	return ok
}

// Delete removes the dataset under name and reports whether it existed.
func (s *DatasetStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.datasets[name]
	delete(s.datasets, name)
	return ok
}

// List returns the stored dataset names in sorted order.
func (s *DatasetStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
