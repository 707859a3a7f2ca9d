package puzzle

import "math/rand/v2"

// DefaultScrambleLength is the number of random turns Scramble makes when
// asked for zero or fewer.
const DefaultScrambleLength = 199

// Scramble picks n uniformly random moves and applies them to the solved
// state. It returns the moves and the resulting state.
func Scramble(rng *rand.Rand, n int) ([]Move, State) {
	if n <= 0 {
		n = DefaultScrambleLength
	}
	gens := Generators()
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = gens[rng.IntN(len(gens))]
	}
	return moves, ApplyAll(Solved(), moves)
}
