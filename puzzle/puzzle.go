package puzzle

import (
	"fmt"

	"github.com/samyzaitoun/statesearch/search"
)

// LightBulb is a toggle puzzle: the only transition flips the bulb, and
// the goal is the bulb being on.
type LightBulb struct {
	On bool
}

// Key returns "on" or "off".
func (b LightBulb) Key() string {
	if b.On {
		return "on"
	}

	return "off"
}

// NextStates returns the single flipped successor.
func (b LightBulb) NextStates() []search.State {
	return []search.State{LightBulb{On: !b.On}}
}

// IsEndState reports whether the bulb is on.
func (b LightBulb) IsEndState() bool { return b.On }

// AttractiveRate is 1 for a lit bulb and 0 otherwise.
func (b LightBulb) AttractiveRate() float64 {
	if b.On {
		return 1
	}

	return 0
}

// ModN is a modular counter: the only transition adds Inc to Val modulo
// Mod, and the goal is Val reaching 0. Whether the goal is reachable
// from a given Val depends on gcd(Inc, Mod).
//
// ModN does not implement search.Rated.
type ModN struct {
	Mod int
	Inc int
	Val int
}

// Key encodes the full configuration, including the fixed Mod and Inc,
// so counters with different parameters never collide.
func (m ModN) Key() string {
	return fmt.Sprintf("mod%d+%d@%d", m.Mod, m.Inc, m.Val)
}

// NextStates returns the single incremented successor.
func (m ModN) NextStates() []search.State {
	return []search.State{ModN{Mod: m.Mod, Inc: m.Inc, Val: (m.Val + m.Inc) % m.Mod}}
}

// IsEndState reports whether the counter reached 0.
func (m ModN) IsEndState() bool { return m.Val == 0 }
