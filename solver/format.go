package solver

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/puzzle"
)

const (
	heavyRule = "================================================================================"
	lightRule = "--------------------------------------------------------------------------------"
)

func formatDepthReport(name string, depth, explored, pruned, frontier int, elapsed time.Duration) string {
	prefix := ""
	if name != "" {
		prefix = color.Gray.Sprintf("[%s] ", name)
	}
	return fmt.Sprintf("%s%s depth %2d: %d explored, %d pruned, %d queued (%s)\n",
		prefix, color.Cyan.Sprint("▸"), depth, explored, pruned, frontier, elapsed.Round(time.Millisecond))
}

// FormatSolution formats a solved puzzle for display. When store is non-nil
// and the result carries a trace, the state after every move is shown.
func FormatSolution(r *Result, store cas.CAS) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	title := "SOLUTION"
	if r.Name != "" {
		title = fmt.Sprintf("SOLUTION: %s", r.Name)
	}
	b.WriteString(color.Green.Sprint(title))
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	if r.RunID != "" {
		b.WriteString(color.Bold.Sprint("Run:      "))
		b.WriteString(fmt.Sprintf("%s\n", r.RunID))
	}
	b.WriteString(color.Bold.Sprint("Start:    "))
	b.WriteString(fmt.Sprintf("%s\n", r.Start.Compact()))
	b.WriteString(color.Bold.Sprint("Length:   "))
	b.WriteString(fmt.Sprintf("%d\n", len(r.Moves)))
	b.WriteString(color.Bold.Sprint("Moves:    "))
	if len(r.Moves) == 0 {
		b.WriteString(color.Yellow.Sprint("(already solved)"))
		b.WriteString("\n")
	} else {
		b.WriteString(color.Yellow.Sprintf("%s\n", puzzle.FormatMoves(r.Moves)))
	}

	if store != nil && len(r.Trace) > 0 {
		b.WriteString(color.Gray.Sprint(lightRule))
		b.WriteString("\n")
		b.WriteString(color.Cyan.Sprint("Trace:"))
		b.WriteString("\n")
		b.WriteString(color.Gray.Sprint(lightRule))
		b.WriteString("\n")
		writeTrace(&b, r, store)
	}
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	return b.String()
}

func writeTrace(w io.Writer, r *Result, store cas.CAS) {
	fmt.Fprintf(w, "  Start (0x%x):\n", uint64(r.StartHash))
	writeState(w, "     ", r.Start)
	for i, step := range r.Trace {
		st, err := cas.Retrieve[puzzle.State](store, step.StateHash)
		if err != nil {
			fmt.Fprintf(w, "\n  Step %d: %s → State 0x%x (unavailable)\n", i+1, step.Move, uint64(step.StateHash))
			continue
		}
		fmt.Fprintf(w, "\n  Step %d: %s (%s %s)\n", i+1, step.Move, step.Move.Corner, step.Move.Rotation)
		fmt.Fprintf(w, "  └─ State 0x%x:\n", uint64(step.StateHash))
		writeState(w, "     ", *st)
	}
}

func writeState(w io.Writer, indent string, s puzzle.State) {
	for _, f := range puzzle.Faces {
		fmt.Fprintf(w, "%s%-6s %s\n", indent, f.String()+":", s.Face(f).Compact())
	}
}

// FormatInvalid formats a validation failure for display.
func FormatInvalid(name string, err error) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Red.Sprint("INVALID STATE"))
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	if name != "" {
		b.WriteString(color.Bold.Sprint("Puzzle:   "))
		b.WriteString(color.Yellow.Sprintf("%s\n", name))
	}
	var ise *puzzle.InvalidStateError
	if errors.As(err, &ise) {
		for _, v := range ise.Violations {
			b.WriteString(color.Red.Sprintf("  ✗ %s\n", v))
		}
	} else {
		b.WriteString(color.Red.Sprintf("  ✗ %s\n", err))
	}
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	return b.String()
}

// FormatStatistics formats search statistics
func FormatStatistics(stats Statistics) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Search statistics ==="))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("States explored: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Explored))
	b.WriteString(color.Bold.Sprint("Unique states found: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.UniqueStates))
	b.WriteString(color.Bold.Sprint("Duplicate states pruned: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Pruned))
	b.WriteString(color.Bold.Sprint("Maximum depth: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.MaxDepth))
	b.WriteString(color.Bold.Sprint("Peak frontier: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.PeakFrontier))
	b.WriteString(color.Bold.Sprint("Elapsed: "))
	b.WriteString(fmt.Sprintf("%s\n", stats.Elapsed.Round(time.Millisecond)))
	return b.String()
}
