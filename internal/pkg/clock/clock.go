package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer the pollers rely on
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }
func (r *realTimer) Stop() bool          { return r.t.Stop() }

// MockClock fires timers immediately and advances its own time by the waited duration.
// Waits are recorded so tests can assert on schedules.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	waits       []time.Duration
	frozen      bool
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// Freeze makes subsequent timers never fire
func (c *MockClock) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
}

func (c *MockClock) Waits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.waits))
	copy(out, c.waits)
	return out
}

func (c *MockClock) NewTimer(d time.Duration) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	if !c.frozen {
		c.currentTime = c.currentTime.Add(d)
		ch <- c.currentTime
	}
	return &mockTimer{ch: ch}
}

type mockTimer struct {
	ch chan time.Time
}

func (m *mockTimer) C() <-chan time.Time { return m.ch }
func (m *mockTimer) Stop() bool          { return false }
