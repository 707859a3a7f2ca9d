package puzzle

import (
	"fmt"
	"strings"
)

// Colour is the colour of a single facelet.
type Colour uint8

const (
	Red Colour = iota
	Yellow
	Blue
	Green
)

// Colours lists every colour in declaration order.
var Colours = [4]Colour{Red, Yellow, Blue, Green}

func (c Colour) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Letter is the one-letter form used by the compact state rendering.
func (c Colour) Letter() string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// ParseColour accepts a colour name or its letter, case-insensitively.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "yellow", "y":
		return Yellow, nil
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}
