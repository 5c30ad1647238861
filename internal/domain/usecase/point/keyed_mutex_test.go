package point

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	// Arrange
	m := NewKeyedMutex()
	const goroutines = 50
	const increments = 100

	counter := 0
	var wg sync.WaitGroup

	// Act: hammer one key from many goroutines; the unsynchronized counter
	// only comes out right if the lock is truly exclusive per key
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				m.Lock(7)
				counter++
				m.Unlock(7)
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, goroutines*increments, counter)
}

func TestKeyedMutex_DistinctKeysDoNotContend(t *testing.T) {
	m := NewKeyedMutex()

	// Holding the lock for one user must not block another user's lock
	m.Lock(1)
	defer m.Unlock(1)

	acquired := make(chan struct{})
	go func() {
		m.Lock(2)
		defer m.Unlock(2)
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock for a distinct user blocked behind an unrelated lock")
	}
}

func TestKeyedMutex_StableIdentityUnderFirstTouch(t *testing.T) {
	m := NewKeyedMutex()
	const goroutines = 32

	// All goroutines race on the first touch of the same key; every one
	// must end up with the same mutex instance
	var wg sync.WaitGroup
	seen := make(chan *sync.Mutex, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			seen <- m.mutexFor(99)
		}()
	}
	wg.Wait()
	close(seen)

	first := <-seen
	for mu := range seen {
		assert.Same(t, first, mu)
	}
}
