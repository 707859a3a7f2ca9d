package solver

import (
	"slices"

	"github.com/timewinder-dev/tetrubik/puzzle"
)

// Thunk is one frontier entry: a state and the moves that reached it from
// the start state. The path is stored as a parent chain so successors share
// their prefix instead of copying it.
type Thunk struct {
	State  puzzle.State
	Depth  int
	Move   puzzle.Move
	Parent *Thunk
}

func (t *Thunk) successor(m puzzle.Move, s puzzle.State) *Thunk {
	return &Thunk{
		State:  s,
		Depth:  t.Depth + 1,
		Move:   m,
		Parent: t,
	}
}

// Path returns the moves from the start state to t, oldest first. The root
// thunk has an empty, non-nil path.
func (t *Thunk) Path() []puzzle.Move {
	out := make([]puzzle.Move, 0, t.Depth)
	for n := t; n.Parent != nil; n = n.Parent {
		out = append(out, n.Move)
	}
	slices.Reverse(out)
	return out
}
