package phase

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Clock maps wall time onto the twelve-phase cycle. The cycle begins at the
// moment the Clock is created and repeats every period, each phase covering
// one twelfth of it.
type Clock struct {
	period time.Duration
	clk    clock.Clock
	epoch  time.Time
}

// NewClock creates a Clock cycling through all twelve phases once per
// period. A nil clk falls back to the wall clock; tests can inject a mock
// clock instead.
func NewClock(period time.Duration, clk clock.Clock) (*Clock, error) {
	if period <= 0 {
		return nil, errors.Errorf("cycle period must be positive, got %v", period)
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Clock{period: period, clk: clk, epoch: clk.Now()}, nil
}

// Period returns the duration of one full cycle.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Now returns the current phase.
func (c *Clock) Now() Phase {
	return c.At(c.clk.Now())
}

// At returns the phase active at the given time. Times before the start of
// the cycle wrap backwards through it.
func (c *Clock) At(t time.Time) Phase {
	elapsed := t.Sub(c.epoch) % c.period
	if elapsed < 0 {
		elapsed += c.period
	}
	return Phase(elapsed * NumPhases / c.period)
}

// Progress returns how far the current phase has advanced, in [0, 1).
func (c *Clock) Progress() float64 {
	return c.ProgressAt(c.clk.Now())
}

// ProgressAt returns how far the phase active at the given time had
// advanced, in [0, 1).
func (c *Clock) ProgressAt(t time.Time) float64 {
	elapsed := t.Sub(c.epoch) % c.period
	if elapsed < 0 {
		elapsed += c.period
	}
	return float64(elapsed*NumPhases%c.period) / float64(c.period)
}

// Offset returns the time into the cycle at which the given phase begins.
func (c *Clock) Offset(p Phase) time.Duration {
	return c.period * time.Duration(p.norm()) / NumPhases
}
