package core

import "time"

// RuntimeConfig carries the display and timing parameters the core needs.
type RuntimeConfig struct {
	ScreenW    int           // Surface width in cells
	ScreenH    int           // Surface height in cells
	TickRate   int           // Ticks per second (default 60)
	Seed       int64         // RNG seed, 0 means time based
	Feedback   time.Duration // How long answer feedback stays visible
	FaultLimit int           // Consecutive faulty ticks before falling back to the root screen
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Feedback:   2 * time.Second,
		FaultLimit: 3,
	}
}

// Clock is the time source read once per tick by timed feedback and used
// to derive the ledger's local date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so durations measured between two readings are immune to clock steps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
