// Package fixture loads puzzle start states from TOML or YAML files.
//
// A fixture names one or more puzzles. Each puzzle starts from the solved
// state, or from explicit face colours, and may then be scrambled by a list
// of moves and by a Starlark script.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/tetrubik/puzzle"
	"gopkg.in/yaml.v3"
)

var ErrNoPuzzles = errors.New("fixture defines no puzzles")

type Format int

const (
	TOML Format = iota
	YAML
)

type Fixture struct {
	Puzzles map[string]PuzzleSpec `toml:"puzzles" yaml:"puzzles"`

	// dir resolves relative script paths.
	dir string
}

type PuzzleSpec struct {
	Front []string `toml:"front,omitempty" yaml:"front,omitempty"`
	Left  []string `toml:"left,omitempty" yaml:"left,omitempty"`
	Right []string `toml:"right,omitempty" yaml:"right,omitempty"`
	Base  []string `toml:"base,omitempty" yaml:"base,omitempty"`

	// Compact is the F/L/R/B letter form, e.g. "RRRRRR/YYYYYY/BBBBBB/GGGGGG".
	Compact string `toml:"compact,omitempty" yaml:"compact,omitempty"`

	Scramble   []string `toml:"scramble,omitempty" yaml:"scramble,omitempty"`
	Script     string   `toml:"script,omitempty" yaml:"script,omitempty"`
	ScriptFile string   `toml:"script_file,omitempty" yaml:"script_file,omitempty"`

	Expect Expectation `toml:"expect,omitempty" yaml:"expect,omitempty"`
}

// Expectation is checked by tests and by `tetrubik solve`.
type Expectation struct {
	Length   *int   `toml:"length,omitempty" yaml:"length,omitempty"`
	Solution string `toml:"solution,omitempty" yaml:"solution,omitempty"`
	Invalid  bool   `toml:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Puzzle is a built fixture entry.
type Puzzle struct {
	Name   string
	Start  puzzle.State
	Moves  []puzzle.Move // scramble and script moves, in application order
	Expect Expectation
}

func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unsupported fixture extension %q", filepath.Ext(path))
}

func Parse(r io.Reader, format Format) (*Fixture, error) {
	var out Fixture
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown fixture format %d", format)
	}
	if len(out.Puzzles) == 0 {
		return nil, ErrNoPuzzles
	}
	return &out, nil
}

func LoadFromFile(path string) (*Fixture, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fx, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	fx.dir = filepath.Dir(path)
	return fx, nil
}

// Names returns the puzzle names in sorted order.
func (f *Fixture) Names() []string {
	return slices.Sorted(maps.Keys(f.Puzzles))
}

// Build builds every puzzle, sorted by name.
func (f *Fixture) Build() ([]Puzzle, error) {
	var out []Puzzle
	for _, name := range f.Names() {
		p, err := f.Puzzles[name].build(name, f.dir)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (p PuzzleSpec) build(name, dir string) (Puzzle, error) {
	start, err := p.initial()
	if err != nil {
		return Puzzle{}, err
	}
	moves, err := puzzle.ParseMoveList(p.Scramble)
	if err != nil {
		return Puzzle{}, fmt.Errorf("scramble: %w", err)
	}

	if p.Script != "" && p.ScriptFile != "" {
		return Puzzle{}, errors.New("script and script_file are mutually exclusive")
	}
	var scripted []puzzle.Move
	switch {
	case p.Script != "":
		scripted, err = RunScript(name+".star", p.Script)
	case p.ScriptFile != "":
		path := p.ScriptFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		scripted, err = RunScriptFile(filepath.Clean(path))
	}
	if err != nil {
		return Puzzle{}, err
	}
	moves = append(moves, scripted...)

	return Puzzle{
		Name:   name,
		Start:  puzzle.ApplyAll(start, moves),
		Moves:  moves,
		Expect: p.Expect,
	}, nil
}

func (p PuzzleSpec) initial() (puzzle.State, error) {
	hasFaces := p.Front != nil || p.Left != nil || p.Right != nil || p.Base != nil
	switch {
	case hasFaces && p.Compact != "":
		return puzzle.State{}, errors.New("faces and compact are mutually exclusive")
	case p.Compact != "":
		return puzzle.ParseCompact(p.Compact)
	case !hasFaces:
		return puzzle.Solved(), nil
	}

	var faces [4]puzzle.FaceState
	for i, names := range [][]string{p.Front, p.Left, p.Right, p.Base} {
		face := puzzle.Faces[i]
		if len(names) != 6 {
			return puzzle.State{}, fmt.Errorf("%s face has %d facelets, expected 6", face, len(names))
		}
		for j, n := range names {
			c, err := puzzle.ParseColour(n)
			if err != nil {
				return puzzle.State{}, fmt.Errorf("%s facelet %d: %w", face, j+1, err)
			}
			faces[i][j] = c
		}
	}
	return puzzle.State{Front: faces[0], Left: faces[1], Right: faces[2], Base: faces[3]}, nil
}

// FromState describes s by its face colour names.
func FromState(s puzzle.State) PuzzleSpec {
	names := func(f puzzle.FaceState) []string {
		out := make([]string, len(f))
		for i, c := range f {
			out[i] = strings.ToLower(c.String())
		}
		return out
	}
	return PuzzleSpec{
		Front: names(s.Front),
		Left:  names(s.Left),
		Right: names(s.Right),
		Base:  names(s.Base),
	}
}

// Encode writes f as TOML.
func (f *Fixture) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}
