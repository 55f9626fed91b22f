package locking

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex hands out one mutex per key so that every mutating operation
// against a campaign aggregate runs with single-writer semantics. Campaigns
// are independent aggregates; locks for different keys never contend.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given key, creating it on first use.
// Mutexes are never released from the map; the number of campaigns a single
// process serves is small relative to the cost of refcounting.
func (k *KeyedMutex) Lock(key uuid.UUID) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
}

// Unlock releases the mutex for the given key.
func (k *KeyedMutex) Unlock(key uuid.UUID) {
	k.mu.Lock()
	l, ok := k.locks[key]
	k.mu.Unlock()
	if ok {
		l.Unlock()
	}
}
