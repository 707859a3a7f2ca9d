// Package solver finds shortest turn sequences that return a puzzle state to
// solved, by breadth-first search over the states reachable through the
// eight generators.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

// ErrSearchExhausted means the frontier emptied without reaching the solved
// state. A validated start state is always solvable, so this signals a broken
// generator table rather than a condition to retry.
var ErrSearchExhausted = errors.New("search exhausted without reaching the solved state")

// ErrDepthLimit is returned when MaxDepth stops the search before a solution.
var ErrDepthLimit = errors.New("depth limit reached")

// ErrEngineUsed is returned by a second call to Run on the same Engine.
var ErrEngineUsed = errors.New("engine already ran a search")

// Engine runs one breadth-first search. Its queues and depth table live for
// exactly one Run call; create a new Engine per search.
type Engine struct {
	Name        string
	Start       puzzle.State
	Queue       []*Thunk
	NextQueue   []*Thunk
	DebugWriter io.Writer
	Reporter    Reporter
	CAS         cas.CAS // optional; when set the solution trace is stored here
	MaxDepth    int     // 0 means unlimited

	// depths maps every dequeued state to the shortest path length it was
	// reached with.
	depths map[puzzle.State]int
	// queued holds the states already waiting in NextQueue.
	queued map[puzzle.State]struct{}
	best   *Thunk
	target puzzle.State
	gens   []puzzle.Move // successor order; puzzle.Generators unless a test restricts it
	used   bool

	explored     int
	pruned       int
	depth        int
	peakFrontier int
}

func NewEngine(start puzzle.State) *Engine {
	return &Engine{
		Start:       start,
		DebugWriter: io.Discard,
	}
}

// Solve returns a shortest move sequence taking start to the solved state.
// Among several shortest sequences it returns the first one met when
// successors are generated in puzzle.Generators order.
func Solve(start puzzle.State) ([]puzzle.Move, error) {
	return SolveContext(context.Background(), start)
}

// SolveContext is Solve with cancellation, checked once per depth layer.
func SolveContext(ctx context.Context, start puzzle.State) ([]puzzle.Move, error) {
	res, err := NewEngine(start).Run(ctx)
	if err != nil {
		return nil, err
	}
	return res.Moves, nil
}

func (e *Engine) computeStatistics(elapsed time.Duration) Statistics {
	return Statistics{
		Explored:     e.explored,
		UniqueStates: len(e.depths),
		Pruned:       e.pruned,
		MaxDepth:     e.depth,
		PeakFrontier: e.peakFrontier,
		Elapsed:      elapsed,
	}
}

func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.used {
		return nil, ErrEngineUsed
	}
	e.used = true
	if e.DebugWriter == nil {
		e.DebugWriter = io.Discard
	}
	if err := puzzle.Validate(e.Start); err != nil {
		return nil, err
	}

	w := e.DebugWriter
	started := time.Now()
	e.target = puzzle.Solved()
	if e.gens == nil {
		e.gens = puzzle.Generators()
	}
	e.depths = make(map[puzzle.State]int)
	e.queued = make(map[puzzle.State]struct{})
	e.Queue = []*Thunk{{State: e.Start}}
	e.NextQueue = nil

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "\n=== Depth %d: Exploring %d states ===\n", e.depth, len(e.Queue))
		layerStart := time.Now()
		prunedBefore := e.pruned

		for len(e.Queue) != 0 {
			t := e.Queue[0]
			e.Queue[0] = nil
			e.Queue = e.Queue[1:]
			e.process(t)
		}

		if e.Reporter != nil {
			e.Reporter.Printf("%s", formatDepthReport(e.Name, e.depth, e.explored, e.pruned-prunedBefore,
				len(e.NextQueue), time.Since(layerStart)))
		}

		if len(e.NextQueue) == 0 {
			break
		}
		if e.best != nil {
			// Every remaining entry is deeper than the solution.
			e.pruned += len(e.NextQueue)
			e.NextQueue = nil
			break
		}
		e.Queue = e.NextQueue
		e.NextQueue = nil
		e.queued = make(map[puzzle.State]struct{})
		e.depth++

		if e.MaxDepth > 0 && e.depth > e.MaxDepth {
			fmt.Fprintf(w, "\nReached maximum depth %d, stopping exploration\n", e.MaxDepth)
			return nil, fmt.Errorf("%w: no solution within %d moves", ErrDepthLimit, e.MaxDepth)
		}
	}

	if e.best == nil {
		return nil, ErrSearchExhausted
	}

	result := &Result{
		Name:  e.Name,
		Start: e.Start,
		Moves: e.best.Path(),
	}
	if e.CAS != nil {
		if err := e.recordTrace(result); err != nil {
			return nil, err
		}
	}
	result.Statistics = e.computeStatistics(time.Since(started))
	return result, nil
}

// process handles one dequeued thunk: dedup against the depth table, prune
// against the best solution, record a solution, or enqueue successors.
func (e *Engine) process(t *Thunk) {
	w := e.DebugWriter
	e.explored++

	if d, ok := e.depths[t.State]; ok && d <= t.Depth {
		e.pruned++
		fmt.Fprintf(w, "State %s already reached at depth %d (pruning)\n", t.State.Compact(), d)
		return
	}
	e.depths[t.State] = t.Depth

	if e.best != nil && e.best.Depth <= t.Depth {
		e.pruned++
		return
	}

	if t.State == e.target {
		e.best = t
		fmt.Fprintf(w, "Found solution of %d moves: %s\n", t.Depth, puzzle.FormatMoves(t.Path()))
		log.Debug().Str("puzzle", e.Name).Int("moves", t.Depth).Msg("solution found")
		return
	}

	childDepth := t.Depth + 1
	for _, m := range e.gens {
		child := m.Apply(t.State)
		if d, ok := e.depths[child]; ok && d <= childDepth {
			e.pruned++
			continue
		}
		if _, ok := e.queued[child]; ok {
			e.pruned++
			continue
		}
		e.queued[child] = struct{}{}
		e.NextQueue = append(e.NextQueue, t.successor(m, child))
	}
	if frontier := len(e.Queue) + len(e.NextQueue); frontier > e.peakFrontier {
		e.peakFrontier = frontier
	}
}

// recordTrace replays the solution from the start state, storing every
// intermediate state in the CAS.
func (e *Engine) recordTrace(r *Result) error {
	st := e.Start
	h, err := e.CAS.Put(&st)
	if err != nil {
		return fmt.Errorf("hashing start state: %w", err)
	}
	r.StartHash = h
	for i, m := range r.Moves {
		st = m.Apply(st)
		h, err := e.CAS.Put(&st)
		if err != nil {
			return fmt.Errorf("hashing state after move %d: %w", i+1, err)
		}
		r.Trace = append(r.Trace, TraceStep{Move: m, StateHash: h})
	}
	return nil
}
