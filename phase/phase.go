// Package phase models a repeating twelve-step temporal cycle and its
// mapping onto the twelve edges of a cube. Phases are modular: every
// constructor and accessor reduces its input into [0, 11], so stepping off
// either end of the cycle wraps around rather than failing.
package phase

import (
	"fmt"

	"github.com/octomesh/spatial/geometry"
)

// NumPhases is the number of steps in one full cycle.
const NumPhases = 12

// Phase identifies one step of the twelve-step cycle, in [0, 11].
type Phase uint8

// New creates a Phase from an arbitrary step count, reducing it modulo
// NumPhases. Negative counts wrap backwards through the cycle.
func New(step int) Phase {
	return Phase((step%NumPhases + NumPhases) % NumPhases)
}

func (p Phase) norm() uint8 {
	return uint8(p) % NumPhases
}

// Value returns the phase index in [0, 11].
func (p Phase) Value() uint8 {
	return p.norm()
}

// Next returns the phase one step forward, wrapping from 11 back to 0.
func (p Phase) Next() Phase {
	return p.Advance(1)
}

// Prev returns the phase one step backward, wrapping from 0 up to 11.
func (p Phase) Prev() Phase {
	return p.Advance(-1)
}

// Advance returns the phase the given number of steps away. Steps may be
// negative and may span any number of full cycles.
func (p Phase) Advance(steps int) Phase {
	return New(int(p.norm()) + steps)
}

// Axis returns the axis of the cube edge the phase occupies. Phases 0 to 3
// lie on the X axis, 4 to 7 on Y and 8 to 11 on Z.
func (p Phase) Axis() geometry.Axis {
	return geometry.Axis(p.norm() / 4)
}

// Quadrant returns the quarter of the cycle the phase falls in, grouping the
// twelve phases into four runs of three.
func (p Phase) Quadrant() uint8 {
	return p.norm() / 3
}

// String returns the phase as "phase N".
func (p Phase) String() string {
	return fmt.Sprintf("phase %d", p.norm())
}

// ClockString renders the phase as an hour mark on a twelve hour dial,
// e.g. "03:00".
func (p Phase) ClockString() string {
	return fmt.Sprintf("%02d:00", p.norm())
}

// Distance returns the number of steps between two phases along the shorter
// way around the cycle, in [0, 6].
func Distance(a, b Phase) uint8 {
	diff := (int(b.norm()) - int(a.norm()) + NumPhases) % NumPhases
	if diff > NumPhases/2 {
		diff = NumPhases - diff
	}
	return uint8(diff)
}

// AreAdjacent reports whether the two phases are exactly one step apart.
func AreAdjacent(a, b Phase) bool {
	return Distance(a, b) == 1
}

// AreOpposite reports whether the two phases are half a cycle apart.
func AreOpposite(a, b Phase) bool {
	return Distance(a, b) == NumPhases/2
}

// Cycle lists all twelve phases in order, starting from the given phase and
// wrapping through the full cycle.
func Cycle(start Phase) [NumPhases]Phase {
	var phases [NumPhases]Phase
	for i := range phases {
		phases[i] = start.Advance(i)
	}
	return phases
}

// PhasesAlong returns the four phases whose cube edges run parallel to the
// given axis. Axes beyond Z reduce modulo the axis count.
func PhasesAlong(axis geometry.Axis) [4]Phase {
	base := Phase(uint8(axis) % 3 * 4)
	return [4]Phase{base, base + 1, base + 2, base + 3}
}
