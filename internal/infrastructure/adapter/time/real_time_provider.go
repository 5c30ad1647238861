package time

import (
	"time"

	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NowMillis returns the current time in Unix milliseconds
func (p *RealTimeProvider) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}
