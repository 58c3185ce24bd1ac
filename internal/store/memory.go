package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store used by tests and the CLI reconciliation run.
// It is safe for concurrent use.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Document)}
}

// Find returns copies of every matching document.
func (m *Memory) Find(_ context.Context, collection string, filter Filter) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Document
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

// FindOne returns a copy of the first matching document, or nil.
func (m *Memory) FindOne(_ context.Context, collection string, filter Filter) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, nil
}

// UpdateOne mutates the first matching document in place. The filter match
// and the write happen under one lock, so a conditional filter gives callers
// an atomic compare-and-set.
func (m *Memory) UpdateOne(_ context.Context, collection string, filter Filter, changes Filter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			for k, v := range changes {
				doc[k] = v
			}
			return true, nil
		}
	}
	return false, nil
}

// Insert appends a copy of the document to the collection.
func (m *Memory) Insert(_ context.Context, collection string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[collection] = append(m.collections[collection], clone(doc))
	return nil
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
