package puzzle

import (
	"fmt"
	"io"
	"strings"

	"github.com/shamaton/msgpack/v2"
)

// FaceState holds the six facelets of one triangular face. Positions are
// numbered 1..6 and stored at indices 0..5.
type FaceState [6]Colour

// Face names one of the four faces of the puzzle.
type Face int

const (
	Front Face = iota
	Left
	Right
	Base
)

// Faces lists the faces in the order they are stored and rendered.
var Faces = [4]Face{Front, Left, Right, Base}

func (f Face) String() string {
	switch f {
	case Front:
		return "Front"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Base:
		return "Base"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Letter is the face initial used in permutation tables and move notation.
func (f Face) Letter() string {
	switch f {
	case Front:
		return "F"
	case Left:
		return "L"
	case Right:
		return "R"
	case Base:
		return "B"
	default:
		return "?"
	}
}

// NewFaceState builds a face from its six facelets in position order.
func NewFaceState(one, two, three, four, five, six Colour) FaceState {
	return FaceState{one, two, three, four, five, six}
}

// UniformFace is a face with every facelet the same colour.
func UniformFace(c Colour) FaceState {
	return FaceState{c, c, c, c, c, c}
}

// At returns the facelet at 1-based position pos.
func (f FaceState) At(pos int) Colour {
	return f[pos-1]
}

func (f FaceState) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Compact renders the face as six colour letters.
func (f FaceState) Compact() string {
	var b strings.Builder
	for _, c := range f {
		b.WriteString(c.Letter())
	}
	return b.String()
}

// State is a snapshot of the whole puzzle. It is a comparable value and is
// used directly as a map key; operations always return a new State.
type State struct {
	Front FaceState
	Left  FaceState
	Right FaceState
	Base  FaceState
}

// Solved returns the uniform solved configuration.
func Solved() State {
	return State{
		Front: UniformFace(Red),
		Left:  UniformFace(Yellow),
		Right: UniformFace(Blue),
		Base:  UniformFace(Green),
	}
}

// SolvedColour is the colour a face carries in the solved state.
func SolvedColour(f Face) Colour {
	switch f {
	case Front:
		return Red
	case Left:
		return Yellow
	case Right:
		return Blue
	default:
		return Green
	}
}

func (s State) IsSolved() bool {
	return s == Solved()
}

// Face returns the named face.
func (s State) Face(f Face) FaceState {
	switch f {
	case Front:
		return s.Front
	case Left:
		return s.Left
	case Right:
		return s.Right
	default:
		return s.Base
	}
}

// Facelet returns the colour at 1-based position pos of face f.
func (s State) Facelet(f Face, pos int) Colour {
	return s.Face(f).At(pos)
}

func (s State) faces() [4]FaceState {
	return [4]FaceState{s.Front, s.Left, s.Right, s.Base}
}

func fromFaces(faces [4]FaceState) State {
	return State{
		Front: faces[Front],
		Left:  faces[Left],
		Right: faces[Right],
		Base:  faces[Base],
	}
}

// WithFace returns a copy of s with face f replaced.
func (s State) WithFace(f Face, face FaceState) State {
	faces := s.faces()
	faces[f] = face
	return fromFaces(faces)
}

func (s State) String() string {
	return fmt.Sprintf("{\n  front: %s,\n  left: %s,\n  right: %s,\n  base: %s}",
		s.Front, s.Left, s.Right, s.Base)
}

// Compact renders the state on one line, faces separated by slashes.
func (s State) Compact() string {
	return s.Front.Compact() + "/" + s.Left.Compact() + "/" + s.Right.Compact() + "/" + s.Base.Compact()
}

// ParseCompact is the inverse of Compact.
func ParseCompact(str string) (State, error) {
	parts := strings.Split(strings.TrimSpace(str), "/")
	if len(parts) != 4 {
		return State{}, fmt.Errorf("compact state %q: expected 4 faces, got %d", str, len(parts))
	}
	var faces [4]FaceState
	for i, p := range parts {
		if len(p) != 6 {
			return State{}, fmt.Errorf("compact state %q: face %s has %d facelets", str, Face(i), len(p))
		}
		for j := 0; j < 6; j++ {
			c, err := ParseColour(p[j : j+1])
			if err != nil {
				return State{}, fmt.Errorf("compact state %q: %w", str, err)
			}
			faces[i][j] = c
		}
	}
	return fromFaces(faces), nil
}

type wireState struct {
	Front []byte
	Left  []byte
	Right []byte
	Base  []byte
}

func faceBytes(f FaceState) []byte {
	out := make([]byte, len(f))
	for i, c := range f {
		out[i] = byte(c)
	}
	return out
}

func bytesFace(name string, b []byte) (FaceState, error) {
	var f FaceState
	if len(b) != len(f) {
		return f, fmt.Errorf("face %s: expected %d facelets, got %d", name, len(f), len(b))
	}
	for i, v := range b {
		if Colour(v) > Green {
			return f, fmt.Errorf("face %s: unknown colour %d", name, v)
		}
		f[i] = Colour(v)
	}
	return f, nil
}

func (s *State) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, wireState{
		Front: faceBytes(s.Front),
		Left:  faceBytes(s.Left),
		Right: faceBytes(s.Right),
		Base:  faceBytes(s.Base),
	})
}

func (s *State) Deserialize(r io.Reader) error {
	var ws wireState
	if err := msgpack.UnmarshalRead(r, &ws); err != nil {
		return err
	}
	var err error
	var out State
	if out.Front, err = bytesFace("Front", ws.Front); err != nil {
		return err
	}
	if out.Left, err = bytesFace("Left", ws.Left); err != nil {
		return err
	}
	if out.Right, err = bytesFace("Right", ws.Right); err != nil {
		return err
	}
	if out.Base, err = bytesFace("Base", ws.Base); err != nil {
		return err
	}
	*s = out
	return nil
}
