// Package chance isolates randomness behind a small interface so the
// probabilistic batch flow stays testable.
package chance

import "math/rand/v2"

// Chooser is the source of randomness for batch decisions.
type Chooser interface {
	// Chance returns true with probability p, where p is in [0, 1].
	Chance(p float64) bool
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Between returns a uniform int in [min, max]. When max <= min it
	// returns min.
	Between(min, max int) int
}

type chooser struct{}

// New returns the default Chooser backed by math/rand/v2.
func New() Chooser { return chooser{} }

func (chooser) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rand.Float64() < p
}

func (chooser) IntN(n int) int { return rand.IntN(n) }

func (chooser) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}
