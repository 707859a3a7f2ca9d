package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState marks a state outside the orbit of the solved state.
var ErrInvalidState = errors.New("invalid state")

// Rule names the invariant a state broke.
type Rule string

const (
	RuleColourCount   Rule = "colour-count"
	RuleCornerCluster Rule = "corner-cluster"
	RuleEdgePair      Rule = "edge-pair"
)

// Violation is one broken invariant.
type Violation struct {
	Rule    Rule
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}

// InvalidStateError lists every invariant a state breaks.
type InvalidStateError struct {
	Violations []Violation
}

func (e *InvalidStateError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, strings.Join(parts, "; "))
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// Has reports whether any violation broke rule r.
func (e *InvalidStateError) Has(r Rule) bool {
	for _, v := range e.Violations {
		if v.Rule == r {
			return true
		}
	}
	return false
}

// cluster is the three facelets nearest a corner and the colours they carry
// when solved, in the same order.
type cluster struct {
	corner   Corner
	facelets [3]facelet
	colours  [3]Colour
}

var clusters = []cluster{
	{FrontLeftBase, [3]facelet{at(Front, 5), at(Base, 3), at(Left, 3)}, [3]Colour{Red, Green, Yellow}},
	{FrontLeftRight, [3]facelet{at(Front, 1), at(Left, 1), at(Right, 1)}, [3]Colour{Red, Yellow, Blue}},
	{FrontRightBase, [3]facelet{at(Front, 3), at(Right, 5), at(Base, 5)}, [3]Colour{Red, Blue, Green}},
	{BaseLeftRight, [3]facelet{at(Left, 5), at(Base, 1), at(Right, 3)}, [3]Colour{Green, Blue, Yellow}},
}

// edges are the facelet pairs straddling the six edges.
var edges = [][2]facelet{
	{at(Front, 2), at(Right, 6)},
	{at(Front, 4), at(Base, 4)},
	{at(Front, 6), at(Left, 2)},
	{at(Base, 2), at(Left, 4)},
	{at(Base, 6), at(Right, 4)},
	{at(Left, 6), at(Right, 2)},
}

type colourPair struct {
	a, b Colour
}

func unordered(a, b Colour) colourPair {
	if a > b {
		a, b = b, a
	}
	return colourPair{a, b}
}

func (p colourPair) String() string {
	return p.a.String() + "/" + p.b.String()
}

func (s State) colourAt(f facelet) Colour {
	return s.Facelet(f.face, f.pos)
}

func isRotationOf(got, want [3]Colour) bool {
	for shift := 0; shift < 3; shift++ {
		if got[0] == want[shift] && got[1] == want[(shift+1)%3] && got[2] == want[(shift+2)%3] {
			return true
		}
	}
	return false
}

// Validate checks that s is a legal configuration: every colour appears six
// times, every corner cluster is a rotation of its solved triple, and the six
// edges carry the six distinct colour pairs once each. It returns an
// *InvalidStateError describing every broken invariant.
func Validate(s State) error {
	var violations []Violation

	counts := map[Colour]int{}
	for _, face := range s.faces() {
		for _, c := range face {
			counts[c]++
		}
	}
	for _, c := range Colours {
		if counts[c] != 6 {
			violations = append(violations, Violation{
				Rule:    RuleColourCount,
				Message: fmt.Sprintf("%s appears %d times, expected 6", c, counts[c]),
			})
		}
	}
	for c, n := range counts {
		if c > Green {
			violations = append(violations, Violation{
				Rule:    RuleColourCount,
				Message: fmt.Sprintf("%d facelets carry unknown colour %d", n, uint8(c)),
			})
		}
	}

	for _, cl := range clusters {
		var got [3]Colour
		for i, f := range cl.facelets {
			got[i] = s.colourAt(f)
		}
		if !isRotationOf(got, cl.colours) {
			violations = append(violations, Violation{
				Rule: RuleCornerCluster,
				Message: fmt.Sprintf("corner %s has %s, %s, %s; expected a rotation of %s, %s, %s",
					cl.corner, got[0], got[1], got[2], cl.colours[0], cl.colours[1], cl.colours[2]),
			})
		}
	}

	remaining := map[colourPair]bool{}
	for i := 0; i < len(Colours); i++ {
		for j := i + 1; j < len(Colours); j++ {
			remaining[unordered(Colours[i], Colours[j])] = true
		}
	}
	for _, e := range edges {
		a, b := s.colourAt(e[0]), s.colourAt(e[1])
		name := e[0].String() + "-" + e[1].String()
		if a == b {
			violations = append(violations, Violation{
				Rule:    RuleEdgePair,
				Message: fmt.Sprintf("edge %s has both facelets %s", name, a),
			})
			continue
		}
		p := unordered(a, b)
		if !remaining[p] {
			violations = append(violations, Violation{
				Rule:    RuleEdgePair,
				Message: fmt.Sprintf("edge %s repeats pair %s", name, p),
			})
			continue
		}
		delete(remaining, p)
	}
	for _, c := range Colours {
		for _, d := range Colours {
			if c < d && remaining[unordered(c, d)] {
				violations = append(violations, Violation{
					Rule:    RuleEdgePair,
					Message: fmt.Sprintf("pair %s never appears on an edge", unordered(c, d)),
				})
			}
		}
	}

	if len(violations) > 0 {
		return &InvalidStateError{Violations: violations}
	}
	return nil
}

func (f facelet) String() string {
	return fmt.Sprintf("%s%d", f.face.Letter(), f.pos)
}
