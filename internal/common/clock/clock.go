package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/guildops/sessionbot/internal/common/clock Clock

// Clock abstracts wall-clock time so session cutoff checks and wizard
// timeouts can be driven deterministically in tests
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New creates a system-clock backed Clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
