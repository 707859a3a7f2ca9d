package fixture

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

func buildOne(t *testing.T, src string, format Format) Puzzle {
	t.Helper()
	fx, err := Parse(strings.NewReader(src), format)
	require.NoError(t, err)
	puzzles, err := fx.Build()
	require.NoError(t, err)
	require.Len(t, puzzles, 1)
	return puzzles[0]
}

func TestParseFaces(t *testing.T) {
	p := buildOne(t, `
[puzzles.example]
front = ["red", "Y", "r", "green", "RED", "red"]
left = ["yellow", "blue", "yellow", "yellow", "yellow", "green"]
right = ["blue", "blue", "blue", "green", "blue", "blue"]
base = ["green", "red", "green", "red", "green", "yellow"]

[puzzles.example.expect]
length = 8
`, TOML)
	assert.Equal(t, "example", p.Name)
	assert.Equal(t, "RYRGRR/YBYYYG/BBBGBB/GRGRGY", p.Start.Compact())
	require.NotNil(t, p.Expect.Length)
	assert.Equal(t, 8, *p.Expect.Length)
	assert.Empty(t, p.Moves)
}

func TestParseYAMLScramble(t *testing.T) {
	p := buildOne(t, `
puzzles:
  two:
    scramble: [FLB, "BLR'"]
    expect:
      solution: "BLR FLB'"
`, YAML)
	want := puzzle.ApplyAll(puzzle.Solved(), []puzzle.Move{
		{Corner: puzzle.FrontLeftBase, Rotation: puzzle.Clockwise},
		{Corner: puzzle.BaseLeftRight, Rotation: puzzle.AntiClockwise},
	})
	assert.Equal(t, want, p.Start)
	assert.Equal(t, "FLB BLR'", puzzle.FormatMoves(p.Moves))
	assert.Equal(t, "BLR FLB'", p.Expect.Solution)
	assert.Nil(t, p.Expect.Length)
}

func TestScrambleAppliesAfterFaces(t *testing.T) {
	p := buildOne(t, `
[puzzles.x]
compact = "RYRGRR/YBYYYG/BBBGBB/GRGRGY"
scramble = ["FRB"]
`, TOML)
	start, err := puzzle.ParseCompact("RYRGRR/YBYYYG/BBBGBB/GRGRGY")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Apply(start, puzzle.FrontRightBase, puzzle.Clockwise), p.Start)
}

func TestBuildIsSortedByName(t *testing.T) {
	fx, err := Parse(strings.NewReader(`
[puzzles.b]
[puzzles.c]
[puzzles.a]
`), TOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fx.Names())
	puzzles, err := fx.Build()
	require.NoError(t, err)
	for _, p := range puzzles {
		assert.True(t, p.Start.IsSolved())
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		format Format
		errMsg string
	}{
		{"empty toml", "", TOML, "no puzzles"},
		{"empty yaml", "", YAML, "no puzzles"},
		{"bad toml", "[puzzles.x\n", TOML, "decoding toml"},
		{"bad yaml", "puzzles: [", YAML, "decoding yaml"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src), tc.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
	_, err := Parse(strings.NewReader(""), TOML)
	assert.ErrorIs(t, err, ErrNoPuzzles)
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		errMsg string
	}{
		{"short face", `[puzzles.x]
front = ["red"]
left = ["yellow", "yellow", "yellow", "yellow", "yellow", "yellow"]
right = ["blue", "blue", "blue", "blue", "blue", "blue"]
base = ["green", "green", "green", "green", "green", "green"]`, "Front face has 1 facelets"},
		{"missing face", `[puzzles.x]
front = ["red", "red", "red", "red", "red", "red"]`, "Left face has 0 facelets"},
		{"bad colour", `[puzzles.x]
front = ["red", "red", "red", "red", "red", "purple"]
left = ["yellow", "yellow", "yellow", "yellow", "yellow", "yellow"]
right = ["blue", "blue", "blue", "blue", "blue", "blue"]
base = ["green", "green", "green", "green", "green", "green"]`, "Front facelet 6"},
		{"faces and compact", `[puzzles.x]
front = ["red", "red", "red", "red", "red", "red"]
compact = "RRRRRR/YYYYYY/BBBBBB/GGGGGG"`, "mutually exclusive"},
		{"bad move", `[puzzles.x]
scramble = ["FLB", "XYZ"]`, "scramble: move 2"},
		{"script and file", `[puzzles.x]
script = "moves = []"
script_file = "x.star"`, "mutually exclusive"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx, err := Parse(strings.NewReader(tc.src), TOML)
			require.NoError(t, err)
			_, err = fx.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), `puzzle "x"`)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]Format{"a.toml": TOML, "b.yaml": YAML, "c.YML": YAML} {
		got, err := FormatForPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatForPath("d.json")
	assert.Error(t, err)
}

func TestLoadFromFileResolvesScripts(t *testing.T) {
	fx, err := LoadFromFile(filepath.Join("..", "testdata", "scripted.toml"))
	require.NoError(t, err)
	puzzles, err := fx.Build()
	require.NoError(t, err)
	require.Len(t, puzzles, 3)
	assert.Equal(t, "file", puzzles[0].Name)
	assert.Equal(t, "FLB BLR' FLB BLR' FRB'", puzzle.FormatMoves(puzzles[0].Moves))
}

func TestEncodeRoundTrip(t *testing.T) {
	s := puzzle.ApplyAll(puzzle.Solved(), []puzzle.Move{
		{Corner: puzzle.FrontLeftRight, Rotation: puzzle.AntiClockwise},
		{Corner: puzzle.BaseLeftRight, Rotation: puzzle.Clockwise},
	})
	fx := &Fixture{Puzzles: map[string]PuzzleSpec{"scrambled": FromState(s)}}
	var buf bytes.Buffer
	require.NoError(t, fx.Encode(&buf))
	assert.Contains(t, buf.String(), "[puzzles.scrambled]")
	assert.NotContains(t, buf.String(), "expect")

	p := buildOne(t, buf.String(), TOML)
	assert.Equal(t, s, p.Start)
}
