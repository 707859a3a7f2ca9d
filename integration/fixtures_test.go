package integration

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/fixture"
	"github.com/timewinder-dev/tetrubik/puzzle"
	"github.com/timewinder-dev/tetrubik/solver"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func isFixture(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// TestFixtures solves every fixture file in testdata as a subtest
func TestFixtures(t *testing.T) {
	testdataDir := filepath.Join("..", "testdata")

	err := filepath.Walk(testdataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isFixture(path) {
			return nil
		}

		relPath, _ := filepath.Rel(testdataDir, path)
		testName := strings.TrimSuffix(relPath, filepath.Ext(relPath))
		testName = strings.ReplaceAll(testName, string(filepath.Separator), "/")

		t.Run(testName, func(t *testing.T) {
			fx, err := fixture.LoadFromFile(path)
			require.NoError(t, err, "Failed to load fixture")
			puzzles, err := fx.Build()
			require.NoError(t, err, "Failed to build puzzles")

			jobs := make([]solver.Job, len(puzzles))
			for i, p := range puzzles {
				jobs[i] = solver.Job{Name: p.Name, Start: p.Start}
			}

			memoryCAS := cas.NewMemoryCAS()
			casStore := cas.NewLRUCache(memoryCAS, 10000)

			results, err := solver.SolveAll(context.Background(), jobs, solver.BatchConfig{CAS: casStore})
			require.NoError(t, err, "Error during search")
			require.Len(t, results, len(puzzles))

			for i, r := range results {
				p := puzzles[i]
				if p.Expect.Invalid {
					assert.ErrorIs(t, r.Err, puzzle.ErrInvalidState, "%s should be rejected", p.Name)
					continue
				}
				require.NoError(t, r.Err, "%s", p.Name)
				res := r.Result

				assert.True(t, puzzle.ApplyAll(p.Start, res.Moves).IsSolved(), "%s: replaying the solution", p.Name)
				if p.Expect.Length != nil {
					assert.Len(t, res.Moves, *p.Expect.Length, "%s: solution length", p.Name)
				}
				if p.Expect.Solution != "" {
					assert.Equal(t, p.Expect.Solution, puzzle.FormatMoves(res.Moves), "%s: solution", p.Name)
				}
				// A scrambled puzzle is never further than its scramble.
				if len(p.Moves) > 0 {
					assert.LessOrEqual(t, len(res.Moves), len(p.Moves), p.Name)
				}

				// The last traced state comes back out of the store solved.
				if len(res.Trace) > 0 {
					last, err := cas.Retrieve[puzzle.State](casStore, res.Trace[len(res.Trace)-1].StateHash)
					require.NoError(t, err)
					assert.True(t, last.IsSolved(), p.Name)
				}

				t.Logf("%s: %d moves, %d explored, %d unique states, %d pruned, max depth %d",
					p.Name, len(res.Moves),
					res.Statistics.Explored,
					res.Statistics.UniqueStates,
					res.Statistics.Pruned,
					res.Statistics.MaxDepth)
			}
		})

		return nil
	})

	require.NoError(t, err, "Error walking testdata directory")
}

// TestScrambleRoundTrip scrambles, writes and reloads a fixture, then checks
// the solver undoes the scramble in no more moves than it took.
func TestScrambleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for seed := uint64(1); seed <= 3; seed++ {
		moves, state := puzzle.Scramble(newRand(seed), 6)
		fx := &fixture.Fixture{Puzzles: map[string]fixture.PuzzleSpec{"s": fixture.FromState(state)}}

		path := filepath.Join(dir, "scramble.toml")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, fx.Encode(f))
		require.NoError(t, f.Close())

		loaded, err := fixture.LoadFromFile(path)
		require.NoError(t, err)
		puzzles, err := loaded.Build()
		require.NoError(t, err)
		require.Len(t, puzzles, 1)
		assert.Equal(t, state, puzzles[0].Start)

		solution, err := solver.Solve(puzzles[0].Start)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(solution), len(moves))
		assert.True(t, puzzle.ApplyAll(state, solution).IsSolved())
	}
}
