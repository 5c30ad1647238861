package memtable

import (
	"sync"

	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/persistence"
)

// PointHistoryTable is the in-memory append-only history log. Entry IDs
// are assigned from a process-wide counter starting at 1.
type PointHistoryTable struct {
	mu      sync.Mutex
	entries []entity.PointHistory
	nextID  int64
}

// NewPointHistoryTable creates an empty history log
func NewPointHistoryTable() persistence.PointHistoryTable {
	return &PointHistoryTable{
		nextID: 1,
	}
}

// Append assigns the next entry ID, appends the record and returns it
func (t *PointHistoryTable) Append(userID int64, amount int64, txType entity.TransactionType, updateMillis int64) entity.PointHistory {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := entity.PointHistory{
		ID:           t.nextID,
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		UpdateMillis: updateMillis,
	}
	t.nextID++
	t.entries = append(t.entries, entry)
	return entry
}

// SelectByUserID returns a snapshot of the user's entries in append order
func (t *PointHistoryTable) SelectByUserID(userID int64) []entity.PointHistory {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]entity.PointHistory, 0)
	for _, entry := range t.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result
}
