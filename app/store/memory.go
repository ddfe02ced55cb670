package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Nayan-navghane/School-application/app/apperr"
)

// Memory is an in-process Store for tests and local development.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]any)}
}

func (m *Memory) List(_ context.Context, collection string, filters ...Filter) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for id, fields := range m.collections[collection] {
		if !matches(fields, filters) {
			continue
		}
		out = append(out, Record{ID: id, Fields: copyFields(fields)})
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.collections[collection][id]
	if !ok {
		return Record{}, apperr.NotFound(collection, id)
	}
	return Record{ID: id, Fields: copyFields(fields)}, nil
}

func (m *Memory) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]any)
	}
	id := uuid.NewString()
	m.collections[collection][id] = copyFields(fields)
	return id, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.collections[collection][id]
	if !ok {
		return apperr.NotFound(collection, id)
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[collection][id]; !ok {
		return apperr.NotFound(collection, id)
	}
	delete(m.collections[collection], id)
	return nil
}

func matches(fields map[string]any, filters []Filter) bool {
	for _, f := range filters {
		v, ok := fields[f.Field]
		if !ok {
			return false
		}
		if stringify(v) != stringify(f.Value) {
			return false
		}
	}
	return true
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// stringify normalizes values for equality comparison; JSON roundtrips
// turn ints into float64, so compare textually.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
	case float32:
		if n == float32(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
	}
	return fmt.Sprintf("%v", v)
}
