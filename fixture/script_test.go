package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

func TestRunScript(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want string
	}{
		{"literal", `moves = ["FLB", "BLR'"]`, "FLB BLR'"},
		{"empty", `moves = []`, ""},
		{"invert", `moves = invert(["FLB", "FRB'"])`, "FRB FLB'"},
		{"repeat", `moves = repeat(["FLR"], 3)`, "FLR FLR FLR"},
		{"repeat keyword", `moves = repeat(moves = ["BLR'"], n = 2)`, "BLR' BLR'"},
		{"generators", `moves = generators[:2]`, "FLB FLB'"},
		{"tuple", `moves = ("FRB", "FLR")`, "FRB FLR"},
		{"loop", "moves = []\nfor g in generators:\n    if g.endswith(\"'\"):\n        moves += [g]\n", "FLB' FRB' FLR' BLR'"},
		{"function", "def commutator(a, b):\n    return a + b + invert(a) + invert(b)\nmoves = commutator([\"FLB\"], [\"FRB\"])\n", "FLB FRB FLB' FRB'"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moves, err := RunScript(tc.name+".star", tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, puzzle.FormatMoves(moves))
		})
	}
}

func TestRunScriptErrors(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		errMsg string
	}{
		{"no moves", `x = 1`, "global `moves` is not defined"},
		{"not a list", `moves = 3`, "expected a list of moves"},
		{"string", `moves = "FLB"`, "expected a list of moves"},
		{"bad element", `moves = ["FLB", 2]`, "move 2: expected a string"},
		{"bad notation", `moves = ["FLB", "FLQ"]`, "move 2: unknown move"},
		{"negative repeat", `moves = repeat(["FLB"], -1)`, "negative count"},
		{"syntax", `moves = [`, "script syntax.star"},
		{"runaway", "moves = []\nwhile True:\n    pass\n", "too many steps"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RunScript(tc.name+".star", tc.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
