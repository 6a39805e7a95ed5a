// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/hexterra/world-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock whose time only moves when told to. Tests drive the
// recharge simulation with it.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixed returns a Fixed clock pinned at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// NewFixedAtMillis returns a Fixed clock pinned at the given epoch milliseconds
func NewFixedAtMillis(ms int64) *Fixed {
	return &Fixed{t: time.UnixMilli(ms)}
}

// Now returns the pinned time
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set pins the clock to t
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t
}

// SetMillis pins the clock to the given epoch milliseconds
func (f *Fixed) SetMillis(ms int64) {
	f.Set(time.UnixMilli(ms))
}

// Advance moves the clock forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}
