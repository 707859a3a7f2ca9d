package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/tetrubik/puzzle"
	"github.com/timewinder-dev/tetrubik/solver"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that every puzzle in the given fixture files is a legal state",
	Args:  cobra.MinimumNArgs(1),
	Run:   validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) {
	puzzles, err := loadPuzzles(args)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load fixtures")
	}
	failed := 0
	for _, p := range puzzles {
		err := puzzle.Validate(p.Start)
		if err == nil {
			fmt.Fprintf(os.Stderr, "%s %s  %s\n", color.Green.Sprint("✓"), p.Name, p.Start.Compact())
			continue
		}
		fmt.Fprint(os.Stderr, solver.FormatInvalid(p.Name, err))
		if !p.Expect.Invalid {
			failed++
		}
	}
	if failed > 0 {
		log.Error().Int("invalid", failed).Int("total", len(puzzles)).Msg("Invalid puzzles found")
		os.Exit(1)
	}
}
