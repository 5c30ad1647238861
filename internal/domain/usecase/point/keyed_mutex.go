package point

import "sync"

// KeyedMutex provides a dedicated exclusive lock per user ID.
//
// Locks are created on first touch via sync.Map.LoadOrStore so that lookup
// and creation are atomic under concurrent first access. Entries are never
// reclaimed; memory growth is bounded by the number of distinct users, which
// is acceptable for an in-memory service.
type KeyedMutex struct {
	locks sync.Map // map[int64]*sync.Mutex
}

// NewKeyedMutex creates an empty keyed mutex pool
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the exclusive lock for the given user ID, blocking while
// another operation on the same user holds it. Operations on distinct
// users do not contend.
func (m *KeyedMutex) Lock(id int64) {
	m.mutexFor(id).Lock()
}

// Unlock releases the lock for the given user ID
func (m *KeyedMutex) Unlock(id int64) {
	m.mutexFor(id).Unlock()
}

func (m *KeyedMutex) mutexFor(id int64) *sync.Mutex {
	if mu, ok := m.locks.Load(id); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := m.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
