// internal/adapters/out/kv/memory_store.go
package kv

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	cartdom "campusink/internal/domain/cart"
)

// schemaVersion is the persisted-blob migration version; it rides along in
// every document next to the nested "state" field.
const schemaVersion = 1

// document is the persisted shape of one store: a single JSON blob per store
// name with a nested state field, always written as a full overwrite.
type document struct {
	State   cartdom.State `json:"state" firestore:"state"`
	Version int           `json:"version" firestore:"version"`
}

// MemoryPersister keeps serialized store blobs in memory. Used as the
// default backend and in tests.
type MemoryPersister struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{docs: map[string][]byte{}}
}

func (p *MemoryPersister) Save(_ context.Context, name string, state cartdom.State) error {
	raw, err := json.Marshal(document{State: state, Version: schemaVersion})
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs[name] = raw
	return nil
}

// Load returns the persisted state. A missing blob or one whose state cannot
// be decoded is a reset condition: the caller gets an empty state, no error.
func (p *MemoryPersister) Load(_ context.Context, name string) (cartdom.State, bool, error) {
	p.mu.Lock()
	raw, ok := p.docs[name]
	p.mu.Unlock()
	if !ok {
		return cartdom.State{}, false, nil
	}

	var d document
	if err := json.Unmarshal(raw, &d); err != nil {
		log.Printf("[kv_memory] WARN: corrupt blob for %q, resetting: %v", name, err)
		return cartdom.State{}, false, nil
	}
	return d.State, true, nil
}
