package fixture

import (
	"fmt"
	"os"

	"github.com/timewinder-dev/tetrubik/puzzle"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// maxScriptSteps bounds a scramble script so a runaway loop fails instead of
// hanging the loader.
const maxScriptSteps = 1_000_000

// RunScript executes a Starlark scramble script and returns the moves held
// by its global `moves`, a list of move notation strings.
//
// Scripts may call invert(moves) and repeat(moves, n), and read the
// predeclared list `generators`.
func RunScript(filename, src string) ([]puzzle.Move, error) {
	return runScript(filename, src)
}

func RunScriptFile(path string) ([]puzzle.Move, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return runScript(path, src)
}

func runScript(filename string, src any) ([]puzzle.Move, error) {
	thread := &starlark.Thread{Name: filename}
	thread.SetMaxExecutionSteps(maxScriptSteps)

	opts := &syntax.FileOptions{TopLevelControl: true, GlobalReassign: true, While: true}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared())
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", filename, err)
	}
	v, ok := globals["moves"]
	if !ok {
		return nil, fmt.Errorf("script %s: global `moves` is not defined", filename)
	}
	moves, err := movesFromValue(v)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", filename, err)
	}
	return moves, nil
}

func predeclared() starlark.StringDict {
	gens := make([]starlark.Value, 0, 8)
	for _, m := range puzzle.Generators() {
		gens = append(gens, starlark.String(m.String()))
	}
	generators := starlark.NewList(gens)
	generators.Freeze()
	return starlark.StringDict{
		"generators": generators,
		"invert":     starlark.NewBuiltin("invert", invertBuiltin),
		"repeat":     starlark.NewBuiltin("repeat", repeatBuiltin),
	}
}

func invertBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seq starlark.Iterable
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &seq); err != nil {
		return nil, err
	}
	moves, err := movesFromValue(seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return movesToValue(puzzle.InvertMoves(moves)), nil
}

func repeatBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seq starlark.Iterable
	var n int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "moves", &seq, "n", &n); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative count %d", b.Name(), n)
	}
	moves, err := movesFromValue(seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	out := make([]puzzle.Move, 0, len(moves)*n)
	for range n {
		out = append(out, moves...)
	}
	return movesToValue(out), nil
}

func movesFromValue(v starlark.Value) ([]puzzle.Move, error) {
	seq, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("expected a list of moves, got %s", v.Type())
	}
	var items []string
	iter := seq.Iterate()
	defer iter.Done()
	var x starlark.Value
	for iter.Next(&x) {
		s, ok := starlark.AsString(x)
		if !ok {
			return nil, fmt.Errorf("move %d: expected a string, got %s", len(items)+1, x.Type())
		}
		items = append(items, s)
	}
	return puzzle.ParseMoveList(items)
}

func movesToValue(moves []puzzle.Move) *starlark.List {
	out := make([]starlark.Value, len(moves))
	for i, m := range moves {
		out[i] = starlark.String(m.String())
	}
	return starlark.NewList(out)
}
