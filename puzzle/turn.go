package puzzle

// facelet addresses one facelet by face and 1-based position.
type facelet struct {
	face Face
	pos  int
}

// assignment copies the colour at src in the old state to dst in the new one.
type assignment struct {
	dst facelet
	src facelet
}

func at(f Face, pos int) facelet { return facelet{face: f, pos: pos} }

func set(dst, src facelet) assignment { return assignment{dst: dst, src: src} }

// permutations holds the facelet moves of each generator. Every table
// rewrites three positions on each of the three faces meeting at the corner.
var permutations = map[Move][]assignment{
	{FrontLeftBase, Clockwise}: {
		set(at(Front, 4), at(Left, 2)), set(at(Front, 5), at(Left, 3)), set(at(Front, 6), at(Left, 4)),
		set(at(Left, 2), at(Base, 2)), set(at(Left, 3), at(Base, 3)), set(at(Left, 4), at(Base, 4)),
		set(at(Base, 2), at(Front, 4)), set(at(Base, 3), at(Front, 5)), set(at(Base, 4), at(Front, 6)),
	},
	{FrontRightBase, Clockwise}: {
		set(at(Front, 2), at(Base, 4)), set(at(Front, 3), at(Base, 5)), set(at(Front, 4), at(Base, 6)),
		set(at(Right, 4), at(Front, 2)), set(at(Right, 5), at(Front, 3)), set(at(Right, 6), at(Front, 4)),
		set(at(Base, 4), at(Right, 4)), set(at(Base, 5), at(Right, 5)), set(at(Base, 6), at(Right, 6)),
	},
	{FrontLeftRight, Clockwise}: {
		set(at(Front, 1), at(Right, 1)), set(at(Front, 2), at(Right, 2)), set(at(Front, 6), at(Right, 6)),
		set(at(Left, 1), at(Front, 1)), set(at(Left, 2), at(Front, 2)), set(at(Left, 6), at(Front, 6)),
		set(at(Right, 1), at(Left, 1)), set(at(Right, 2), at(Left, 2)), set(at(Right, 6), at(Left, 6)),
	},
	{BaseLeftRight, Clockwise}: {
		set(at(Left, 4), at(Right, 2)), set(at(Left, 5), at(Right, 3)), set(at(Left, 6), at(Right, 4)),
		set(at(Right, 2), at(Base, 6)), set(at(Right, 3), at(Base, 1)), set(at(Right, 4), at(Base, 2)),
		set(at(Base, 1), at(Left, 5)), set(at(Base, 2), at(Left, 6)), set(at(Base, 6), at(Left, 4)),
	},
	{FrontLeftBase, AntiClockwise}: {
		set(at(Front, 4), at(Base, 2)), set(at(Front, 5), at(Base, 3)), set(at(Front, 6), at(Base, 4)),
		set(at(Left, 2), at(Front, 4)), set(at(Left, 3), at(Front, 5)), set(at(Left, 4), at(Front, 6)),
		set(at(Base, 2), at(Left, 2)), set(at(Base, 3), at(Left, 3)), set(at(Base, 4), at(Left, 4)),
	},
	{FrontRightBase, AntiClockwise}: {
		set(at(Front, 2), at(Right, 4)), set(at(Front, 3), at(Right, 5)), set(at(Front, 4), at(Right, 6)),
		set(at(Right, 4), at(Base, 4)), set(at(Right, 5), at(Base, 5)), set(at(Right, 6), at(Base, 6)),
		set(at(Base, 4), at(Front, 2)), set(at(Base, 5), at(Front, 3)), set(at(Base, 6), at(Front, 4)),
	},
	{FrontLeftRight, AntiClockwise}: {
		set(at(Front, 1), at(Left, 1)), set(at(Front, 2), at(Left, 2)), set(at(Front, 6), at(Left, 6)),
		set(at(Left, 1), at(Right, 1)), set(at(Left, 2), at(Right, 2)), set(at(Left, 6), at(Right, 6)),
		set(at(Right, 1), at(Front, 1)), set(at(Right, 2), at(Front, 2)), set(at(Right, 6), at(Front, 6)),
	},
	{BaseLeftRight, AntiClockwise}: {
		set(at(Left, 4), at(Base, 6)), set(at(Left, 5), at(Base, 1)), set(at(Left, 6), at(Base, 2)),
		set(at(Right, 2), at(Left, 4)), set(at(Right, 3), at(Left, 5)), set(at(Right, 4), at(Left, 6)),
		set(at(Base, 1), at(Right, 3)), set(at(Base, 2), at(Right, 4)), set(at(Base, 6), at(Right, 2)),
	},
}

// Apply turns the puzzle at corner c in direction r. It is defined for every
// corner and rotation and never modifies s.
func Apply(s State, c Corner, r Rotation) State {
	table, ok := permutations[Move{Corner: c, Rotation: r}]
	if !ok {
		return s
	}
	src := s.faces()
	dst := src
	for _, a := range table {
		dst[a.dst.face][a.dst.pos-1] = src[a.src.face][a.src.pos-1]
	}
	return fromFaces(dst)
}

// Apply turns s by this move.
func (m Move) Apply(s State) State {
	return Apply(s, m.Corner, m.Rotation)
}

// ApplyAll applies moves to s in order.
func ApplyAll(s State, moves []Move) State {
	for _, m := range moves {
		s = m.Apply(s)
	}
	return s
}
