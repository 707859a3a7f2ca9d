package puzzle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorOrder(t *testing.T) {
	gens := Generators()
	require.Len(t, gens, 8)
	assert.Equal(t, "FLB FLB' FRB FRB' FLR FLR' BLR BLR'", FormatMoves(gens))
	for i := 0; i < len(gens); i += 2 {
		assert.Equal(t, gens[i].Inverse(), gens[i+1])
	}
}

func TestParseMove(t *testing.T) {
	testCases := []struct {
		in   string
		want Move
	}{
		{"FLB", Move{FrontLeftBase, Clockwise}},
		{"flb'", Move{FrontLeftBase, AntiClockwise}},
		{"FRB+", Move{FrontRightBase, Clockwise}},
		{"FLR-", Move{FrontLeftRight, AntiClockwise}},
		{"BaseLeftRight'", Move{BaseLeftRight, AntiClockwise}},
		{" BLR ", Move{BaseLeftRight, Clockwise}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMove(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseMove("XYZ")
	assert.Error(t, err)
	_, err = ParseMoves("FLB, QQQ")
	assert.ErrorContains(t, err, "move 2")
}

func TestFormatParseMoves(t *testing.T) {
	moves := []Move{{FrontRightBase, Clockwise}, {BaseLeftRight, AntiClockwise}, {FrontLeftRight, Clockwise}}
	parsed, err := ParseMoves(FormatMoves(moves))
	require.NoError(t, err)
	assert.Equal(t, moves, parsed)
	assert.Equal(t, "FLR' BLR FRB'", FormatMoves(InvertMoves(moves)))
}

func TestStateCompact(t *testing.T) {
	s := originalExample()
	assert.Equal(t, "RYRGRR/YBYYYG/BBBGBB/GRGRGY", s.Compact())
	parsed, err := ParseCompact(s.Compact())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	_, err = ParseCompact("RRRRRR/YYYYYY/BBBBBB")
	assert.Error(t, err)
	_, err = ParseCompact("RRRRRX/YYYYYY/BBBBBB/GGGGGG")
	assert.Error(t, err)
}

func TestStateSerialize(t *testing.T) {
	s := originalExample()
	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf))
	var out State
	require.NoError(t, out.Deserialize(&buf))
	assert.Equal(t, s, out)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Red, Red, Red, Red, Red, Red", Solved().Front.String())
	assert.Contains(t, Solved().String(), "base: Green, Green")
	assert.True(t, Solved().IsSolved())
	assert.Equal(t, Green, SolvedColour(Base))
}
