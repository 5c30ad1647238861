package core

import "time"

// TimeProvider abstracts time operations for the domain.
// The point tables stamp balance mutations with NowMillis, so tests can
// pin the clock and assert the timestamp coupling between a committed
// balance and its history entry.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
	// NowMillis returns the current time in Unix milliseconds
	NowMillis() int64
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
