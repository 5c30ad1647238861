package persistence

import (
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
)

// UserPointTable is the keyed balance store.
//
// Each operation is atomic with respect to the table's internal map, but the
// table does not provide read-modify-write atomicity; callers that combine
// SelectByID and Upsert must hold the per-user lock for the whole sequence.
type UserPointTable interface {
	// SelectByID returns the stored record for the user, or a fresh
	// zero-balance record without inserting it when the user is unseen
	SelectByID(id int64) entity.UserPoint

	// Upsert replaces or inserts the user's balance, stamps the commit
	// time, and returns the stored record
	Upsert(id int64, point int64) entity.UserPoint
}

// PointHistoryTable is the append-only log of committed balance mutations.
type PointHistoryTable interface {
	// Append assigns the next entry id, appends the record, and returns it.
	// Appends are atomic and totally ordered.
	Append(userID int64, amount int64, txType entity.TransactionType, updateMillis int64) entity.PointHistory

	// SelectByUserID returns all entries for the user in append order;
	// the result is a snapshot and may be empty
	SelectByUserID(userID int64) []entity.PointHistory
}
