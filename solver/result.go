package solver

import (
	"time"

	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

type Result struct {
	Name       string
	RunID      string
	Start      puzzle.State
	Moves      []puzzle.Move
	StartHash  cas.Hash
	Trace      []TraceStep // empty unless the engine had a CAS
	Statistics Statistics
}

// TraceStep is one move of the solution and the state it produced.
type TraceStep struct {
	Move      puzzle.Move
	StateHash cas.Hash
}

type Statistics struct {
	Explored     int // thunks taken off the queue
	UniqueStates int // distinct states recorded in the depth table
	Pruned       int // thunks discarded or never enqueued as duplicates
	MaxDepth     int
	PeakFrontier int
	Elapsed      time.Duration
}
