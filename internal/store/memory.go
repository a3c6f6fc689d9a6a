package store

import (
	"sync"

	"github.com/punchlinehub/sitecontent/internal/content"
)

// MemoryStore is an in-process Store, mainly for tests.
type MemoryStore struct {
	mu    sync.Mutex
	docs  map[content.Kind][]content.Document
	calls map[content.Kind]int
	err   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  map[content.Kind][]content.Document{},
		calls: map[content.Kind]int{},
	}
}

// Add appends a document to kind's enumeration order.
func (m *MemoryStore) Add(kind content.Kind, id, raw string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[kind] = append(m.docs[kind], content.Document{Kind: kind, ID: id, Raw: []byte(raw)})
	return m
}

// FailWith makes every List call return err.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls reports how many times kind was listed.
func (m *MemoryStore) Calls(kind content.Kind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[kind]
}

// List implements Store.
func (m *MemoryStore) List(kind content.Kind) (Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[kind]++
	if m.err != nil {
		return Listing{}, m.err
	}
	return Listing{Documents: append([]content.Document(nil), m.docs[kind]...)}, nil
}
