// Package dice provides the injectable randomness used by the combat core.
//
// Every roll the game makes (critical hits, heal amounts, skill damage,
// turn-order tie-breaks) flows through a Source so tests can supply
// deterministic sequences and replay exact battles.
package dice

// Source produces uniformly distributed random ints.
type Source interface {
	// Intn returns a random int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// RollRange returns a uniform random int in [lo, hi] inclusive.
//
// Precondition: src must be non-nil; lo <= hi.
// Postcondition: lo <= result <= hi.
func RollRange(src Source, lo, hi int) int {
	if lo > hi {
		panic("dice: RollRange called with lo > hi")
	}
	return lo + src.Intn(hi-lo+1)
}

// Percentile returns a uniform random int in [1, 100], the game's
// luck-check roll.
func Percentile(src Source) int {
	return src.Intn(100) + 1
}
