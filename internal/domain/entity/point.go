package entity

// TransactionType classifies a point history entry
type TransactionType string

const (
	// TransactionTypeCharge credits points to a user's balance
	TransactionTypeCharge TransactionType = "CHARGE"
	// TransactionTypeUse debits points from a user's balance
	TransactionTypeUse TransactionType = "USE"
)

// IsValidTransactionType checks if the given type is one of the allowed values
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeCharge, TransactionTypeUse:
		return true
	default:
		return false
	}
}

// String returns the string representation of the transaction type
func (t TransactionType) String() string {
	return string(t)
}

// UserPoint represents the current point balance of a single user.
// The balance is always non-negative; UpdateMillis is the commit timestamp
// of the last balance mutation in Unix milliseconds.
type UserPoint struct {
	ID           int64
	Point        int64
	UpdateMillis int64
}

// EmptyUserPoint returns the zero-balance record handed out for users
// that have never been written to the store
func EmptyUserPoint(id int64, nowMillis int64) UserPoint {
	return UserPoint{
		ID:           id,
		Point:        0,
		UpdateMillis: nowMillis,
	}
}

// CanUse checks if the current balance covers a deduction of the given amount
func (p UserPoint) CanUse(amount int64) bool {
	return p.Point >= amount
}

// PointHistory is an immutable record of a committed balance mutation.
// ID is assigned by the history table and is unique within the process;
// Amount is always positive, the direction is carried by Type.
type PointHistory struct {
	ID           int64
	UserID       int64
	Amount       int64
	Type         TransactionType
	UpdateMillis int64
}
