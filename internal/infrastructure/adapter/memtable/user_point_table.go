package memtable

import (
	"sync"

	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/persistence"
)

// UserPointTable is the in-memory balance store. All state is lost on
// process exit. The internal mutex makes each operation atomic with
// respect to the map; read-modify-write atomicity is the caller's job.
type UserPointTable struct {
	mu           sync.RWMutex
	points       map[int64]entity.UserPoint
	timeProvider coreport.TimeProvider
}

// NewUserPointTable creates an empty balance store
func NewUserPointTable(timeProvider coreport.TimeProvider) persistence.UserPointTable {
	return &UserPointTable{
		points:       make(map[int64]entity.UserPoint),
		timeProvider: timeProvider,
	}
}

// SelectByID returns the stored record for the user. A miss yields a fresh
// zero-balance record stamped with the current time; it is not inserted, so
// reads never pollute the map.
func (t *UserPointTable) SelectByID(id int64) entity.UserPoint {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if p, ok := t.points[id]; ok {
		return p
	}
	return entity.EmptyUserPoint(id, t.timeProvider.NowMillis())
}

// Upsert replaces or inserts the user's balance and returns the stored
// record. The returned UpdateMillis is the commit timestamp the matching
// history entry must carry.
func (t *UserPointTable) Upsert(id int64, point int64) entity.UserPoint {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := entity.UserPoint{
		ID:           id,
		Point:        point,
		UpdateMillis: t.timeProvider.NowMillis(),
	}
	t.points[id] = p
	return p
}
