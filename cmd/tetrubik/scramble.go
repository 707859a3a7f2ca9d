package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/tetrubik/fixture"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

var (
	scrambleMoves int
	scrambleSeed  uint64
	scrambleName  string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a TOML fixture holding a randomly scrambled puzzle",
	Args:  cobra.NoArgs,
	Run:   scrambleCommand,
}

func init() {
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", puzzle.DefaultScrambleLength, "Number of random turns")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time based)")
	scrambleCmd.Flags().StringVar(&scrambleName, "name", "scrambled", "Puzzle name in the fixture")
}

func scrambleCommand(cmd *cobra.Command, args []string) {
	seed := scrambleSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	moves, state := puzzle.Scramble(rng, scrambleMoves)
	log.Info().Uint64("seed", seed).Int("moves", len(moves)).Str("state", state.Compact()).Msg("Scrambled")
	log.Debug().Str("scramble", puzzle.FormatMoves(moves)).Msg("Scramble sequence")

	fx := &fixture.Fixture{Puzzles: map[string]fixture.PuzzleSpec{
		scrambleName: fixture.FromState(state),
	}}
	if err := fx.Encode(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Couldn't write fixture")
	}
}
