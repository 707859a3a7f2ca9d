package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

var (
	replayFrom string
)

var replayCmd = &cobra.Command{
	Use:   "replay MOVES...",
	Short: "Apply moves to the solved state (or a fixture puzzle) and print each state",
	Args:  cobra.MinimumNArgs(1),
	Run:   replayCommand,
}

func init() {
	replayCmd.Flags().StringVar(&replayFrom, "from", "", "Start from the single puzzle in this fixture file")
}

func replayCommand(cmd *cobra.Command, args []string) {
	moves, err := puzzle.ParseMoves(strings.Join(args, " "))
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't parse moves")
	}

	state := puzzle.Solved()
	if replayFrom != "" {
		puzzles, err := loadPuzzles([]string{replayFrom})
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't load fixture")
		}
		if len(puzzles) != 1 {
			log.Fatal().Int("puzzles", len(puzzles)).Msg("--from needs a fixture with exactly one puzzle")
		}
		state = puzzles[0].Start
	}

	fmt.Println(color.Bold.Sprint("Start"))
	fmt.Println(state)
	for i, m := range moves {
		state = m.Apply(state)
		fmt.Println()
		fmt.Println(color.Bold.Sprintf("Step %d: %s", i+1, m))
		fmt.Println(state)
	}
	if err := puzzle.Validate(state); err != nil {
		log.Warn().Err(err).Msg("Final state is not legal")
	} else if state.IsSolved() {
		fmt.Println(color.Green.Sprint("\n✓ Solved"))
	}
}
