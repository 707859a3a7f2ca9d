package puzzle

import (
	"fmt"
	"strings"
)

// Corner identifies one of the four vertices where three faces meet.
type Corner int

const (
	FrontLeftBase Corner = iota
	FrontRightBase
	FrontLeftRight
	BaseLeftRight
)

// Corners lists the corners in search enumeration order.
var Corners = [4]Corner{FrontLeftBase, FrontRightBase, FrontLeftRight, BaseLeftRight}

func (c Corner) String() string {
	switch c {
	case FrontLeftBase:
		return "FrontLeftBase"
	case FrontRightBase:
		return "FrontRightBase"
	case FrontLeftRight:
		return "FrontLeftRight"
	case BaseLeftRight:
		return "BaseLeftRight"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Notation is the three-letter corner name used in move sequences.
func (c Corner) Notation() string {
	switch c {
	case FrontLeftBase:
		return "FLB"
	case FrontRightBase:
		return "FRB"
	case FrontLeftRight:
		return "FLR"
	case BaseLeftRight:
		return "BLR"
	default:
		return "?"
	}
}

// Faces returns the three faces that meet at the corner.
func (c Corner) Faces() [3]Face {
	switch c {
	case FrontLeftBase:
		return [3]Face{Front, Left, Base}
	case FrontRightBase:
		return [3]Face{Front, Right, Base}
	case FrontLeftRight:
		return [3]Face{Front, Left, Right}
	default:
		return [3]Face{Base, Left, Right}
	}
}

// Untouched is the face a turn at this corner leaves alone.
func (c Corner) Untouched() Face {
	switch c {
	case FrontLeftBase:
		return Right
	case FrontRightBase:
		return Left
	case FrontLeftRight:
		return Base
	default:
		return Front
	}
}

// Rotation is the direction of a quarter-turn.
type Rotation int

const (
	Clockwise Rotation = iota
	AntiClockwise
)

// Rotations lists the rotations in search enumeration order.
var Rotations = [2]Rotation{Clockwise, AntiClockwise}

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "Clockwise"
	case AntiClockwise:
		return "AntiClockwise"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

func (r Rotation) Inverse() Rotation {
	if r == Clockwise {
		return AntiClockwise
	}
	return Clockwise
}

// Move is a generator: one quarter-turn at one corner.
type Move struct {
	Corner   Corner
	Rotation Rotation
}

// Generators returns all 8 moves in search enumeration order: corners in
// Corners order, Clockwise before AntiClockwise.
func Generators() []Move {
	out := make([]Move, 0, len(Corners)*len(Rotations))
	for _, c := range Corners {
		for _, r := range Rotations {
			out = append(out, Move{Corner: c, Rotation: r})
		}
	}
	return out
}

func (m Move) Inverse() Move {
	return Move{Corner: m.Corner, Rotation: m.Rotation.Inverse()}
}

// String renders the move in notation: FLB for clockwise, FLB' for
// anticlockwise.
func (m Move) String() string {
	if m.Rotation == AntiClockwise {
		return m.Corner.Notation() + "'"
	}
	return m.Corner.Notation()
}

// ParseMove reads a single move in notation. Besides the short corner names
// it accepts the long ones (FrontLeftBase), "-" as a synonym for the
// anticlockwise mark and an optional "+" for clockwise.
func ParseMove(s string) (Move, error) {
	str := strings.TrimSpace(s)
	rot := Clockwise
	switch {
	case strings.HasSuffix(str, "'"), strings.HasSuffix(str, "-"):
		rot = AntiClockwise
		str = str[:len(str)-1]
	case strings.HasSuffix(str, "+"):
		str = str[:len(str)-1]
	}
	for _, c := range Corners {
		if strings.EqualFold(str, c.Notation()) || strings.EqualFold(str, c.String()) {
			return Move{Corner: c, Rotation: rot}, nil
		}
	}
	return Move{}, fmt.Errorf("unknown move %q", s)
}

// ParseMoves parses whitespace or comma separated moves.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return ParseMoveList(fields)
}

// ParseMoveList parses one move per element.
func ParseMoveList(items []string) ([]Move, error) {
	out := make([]Move, 0, len(items))
	for i, item := range items {
		m, err := ParseMove(item)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// FormatMoves joins moves in notation, separated by spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
