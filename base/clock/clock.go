package clock

import (
	"github.com/benbjohnson/clock"
)

// Clock is the engine's single time source. Every lifecycle comparison reads
// through it so tests can pin the timeline with a mock instead of sleeping.
type Clock = clock.Clock

// Mock is a settable clock for tests.
type Mock = clock.Mock

// New returns the wall clock.
func New() Clock {
	return clock.New()
}

// NewMock returns a clock frozen at the unix epoch until advanced.
func NewMock() *Mock {
	return clock.NewMock()
}
