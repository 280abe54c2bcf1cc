// Package bounds enforces the configured numeric range of a field.
//
// Exceeding max rejects the edit so the caller can roll it back. Falling
// below min only raises a flag; typing is never blocked by min because every
// value on the way up from zero starts out small.
package bounds

import "math"

// Guard holds the range of one field. The zero value is unbounded above and
// has a minimum of zero.
type Guard struct {
	max    float64
	min    float64
	hasMax bool
}

// Result is the outcome of one check. Both flags describe the current value,
// they are recomputed on every check rather than toggled on crossings.
type Result struct {
	Accepted bool
	MaxFlag  bool
	MinFlag  bool
}

// New builds a guard. Pass math.Inf(1) for an unbounded max.
func New(max, min float64) Guard {
	return Guard{max: max, min: min, hasMax: true}
}

// Max returns the configured upper bound.
func (g Guard) Max() float64 {
	if !g.hasMax {
		return math.Inf(1)
	}
	return g.max
}

// Min returns the configured lower bound.
func (g Guard) Min() float64 {
	return g.min
}

// Valid reports whether max is strictly greater than min. An invalid guard
// accepts every value and never raises a flag.
func (g Guard) Valid() bool {
	return g.Max() > g.min
}

// Check evaluates a value produced by an edit.
func (g Guard) Check(value float64) Result {
	if !g.Valid() {
		return Result{Accepted: true}
	}
	if value > g.Max() {
		return Result{Accepted: false, MaxFlag: true}
	}
	return Result{Accepted: true, MinFlag: value < g.min}
}

// CheckBlur re-evaluates the value when the field loses focus. The max flag
// is forced off whenever value is within range, whatever prev says.
func (g Guard) CheckBlur(value float64, prev Result) Result {
	out := prev
	out.Accepted = true
	if !g.Valid() {
		return Result{Accepted: true}
	}
	if value <= g.Max() {
		out.MaxFlag = false
	} else {
		out.MaxFlag = true
	}
	out.MinFlag = value < g.min
	return out
}

// Clamp raises value to min when it is below it. Used for initial values.
func (g Guard) Clamp(value float64) float64 {
	if g.Valid() && value < g.min {
		return g.min
	}
	return value
}
