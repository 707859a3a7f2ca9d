package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/fixture"
	"github.com/timewinder-dev/tetrubik/puzzle"
	"github.com/timewinder-dev/tetrubik/solver"
)

var (
	debugFlag    bool
	detailsFlag  bool
	quietFlag    bool
	workersFlag  int
	maxDepthFlag int
	cacheSize    int
	timeoutFlag  time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE...",
	Short: "Solve every puzzle in the given fixture files",
	Args:  cobra.MinimumNArgs(1),
	Run:   solveCommand,
}

func init() {
	solveCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug output to see each search step")
	solveCmd.Flags().BoolVar(&detailsFlag, "details", false, "Show the state after every move of each solution")
	solveCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Print only one line per puzzle to stdout")
	solveCmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of puzzles solved concurrently (0 = number of CPUs)")
	solveCmd.Flags().IntVar(&maxDepthFlag, "max-depth", 0, "Give up on puzzles needing more moves than this (0 = unlimited)")
	solveCmd.Flags().IntVar(&cacheSize, "cache-size", cas.DefaultCacheSize, "Number of trace states kept in the LRU cache")
	solveCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Abort the whole run after this long (0 = no limit)")
}

// loadPuzzles reads every fixture file. Job names are prefixed with the file
// name when more than one file is given.
func loadPuzzles(paths []string) ([]fixture.Puzzle, error) {
	var out []fixture.Puzzle
	for _, path := range paths {
		fx, err := fixture.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		puzzles, err := fx.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, p := range puzzles {
			if len(paths) > 1 {
				p.Name = path + ":" + p.Name
			}
			out = append(out, p)
		}
	}
	return out, nil
}

func solveCommand(cmd *cobra.Command, args []string) {
	puzzles, err := loadPuzzles(args)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load fixtures")
	}

	jobs := make([]solver.Job, len(puzzles))
	for i, p := range puzzles {
		jobs[i] = solver.Job{Name: p.Name, Start: p.Start}
	}

	store := cas.NewLRUCache(cas.NewMemoryCAS(), cacheSize)
	cfg := solver.BatchConfig{
		Workers:     workersFlag,
		DebugWriter: io.Discard,
		Reporter:    &solver.SilentReporter{},
		CAS:         store,
		MaxDepth:    maxDepthFlag,
	}
	if debugFlag {
		cfg.DebugWriter = os.Stderr
	}
	if !quietFlag {
		cfg.Reporter = &solver.ColorReporter{Writer: os.Stderr}
		fmt.Fprintln(os.Stderr, color.Cyan.Sprintf("Solving %d puzzle(s)...", len(jobs)))
	}

	ctx := context.Background()
	if timeoutFlag > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeoutFlag)
		defer cancel()
	}

	results, err := solver.SolveAll(ctx, jobs, cfg)
	if errors.Is(err, solver.ErrSearchExhausted) {
		log.Fatal().Err(err).Msg("Search ended without a solution for a valid state")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Error during search")
	}

	failed := 0
	for i, r := range results {
		if !report(r, puzzles[i].Expect, store) {
			failed++
		}
	}

	if detailsFlag && !quietFlag {
		stats := store.Stats()
		log.Debug().Int("size", stats.Size).Int("hits", stats.Hits).Int("misses", stats.Misses).Msg("trace cache")
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(results)).Msg("Some puzzles did not meet expectations")
		os.Exit(1)
	}
	if !quietFlag {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, color.Green.Sprint("✓ All puzzles handled as expected"))
	}
}

// report prints one job result and returns whether it matched the fixture's
// expectation.
func report(r solver.JobResult, expect fixture.Expectation, store cas.CAS) bool {
	if r.Err != nil {
		if quietFlag {
			fmt.Printf("%s\t%s\n", r.Job.Name, errorLabel(r.Err))
		} else if errors.Is(r.Err, puzzle.ErrInvalidState) {
			fmt.Fprint(os.Stderr, solver.FormatInvalid(r.Job.Name, r.Err))
		} else {
			log.Warn().Err(r.Err).Str("puzzle", r.Job.Name).Msg("No solution")
		}
		if expect.Invalid && errors.Is(r.Err, puzzle.ErrInvalidState) {
			return true
		}
		return false
	}

	res := r.Result
	if quietFlag {
		fmt.Printf("%s\t%s\n", r.Job.Name, puzzle.FormatMoves(res.Moves))
	} else {
		var trace cas.CAS
		if detailsFlag {
			trace = store
		}
		fmt.Fprint(os.Stderr, solver.FormatSolution(res, trace))
		fmt.Fprint(os.Stderr, solver.FormatStatistics(res.Statistics))
	}

	if err := checkExpectation(res.Moves, expect); err != nil {
		log.Error().Err(err).Str("puzzle", r.Job.Name).Msg("Unexpected solution")
		return false
	}
	return true
}

func checkExpectation(moves []puzzle.Move, expect fixture.Expectation) error {
	if expect.Invalid {
		return errors.New("expected an invalid state but it was solved")
	}
	if expect.Length != nil && *expect.Length != len(moves) {
		return fmt.Errorf("expected %d moves, got %d", *expect.Length, len(moves))
	}
	if expect.Solution != "" {
		want, err := puzzle.ParseMoves(expect.Solution)
		if err != nil {
			return fmt.Errorf("expected solution: %w", err)
		}
		if got := puzzle.FormatMoves(moves); got != puzzle.FormatMoves(want) {
			return fmt.Errorf("expected %q, got %q", puzzle.FormatMoves(want), got)
		}
	}
	return nil
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, puzzle.ErrInvalidState):
		return "invalid"
	case errors.Is(err, solver.ErrDepthLimit):
		return "depth-limit"
	default:
		return "error"
	}
}
