// Package symmetry maps coordinates between the match's frame and a
// seat's canonical frame, in which that seat's goal is the south edge.
package symmetry

import "github.com/quorbot/quorbot/board"

// Rotation is a number of counter-clockwise quarter turns of the board.
type Rotation int

// Quarters returns the rotation that brings seat's goal to the south
// edge. In a two-player match the seats face each other, so each seat
// is a half turn from the next.
func Quarters(n, seat int) Rotation {
	if n == 2 {
		return Rotation(2 * seat).norm()
	}
	return Rotation(seat).norm()
}

func (r Rotation) norm() Rotation {
	return ((r % 4) + 4) % 4
}

// Inverse undoes r.
func (r Rotation) Inverse() Rotation {
	return (4 - r.norm()).norm()
}

func (r Rotation) Then(o Rotation) Rotation {
	return (r + o).norm()
}

func (r Rotation) Pos(size int, p board.Pos) board.Pos {
	flip := func(i int) int { return size - 1 - i }
	switch r.norm() {
	case 0:
		return p
	case 1:
		return board.Pos{X: p.Y, Y: flip(p.X)}
	case 2:
		return board.Pos{X: flip(p.X), Y: flip(p.Y)}
	default:
		return board.Pos{X: flip(p.Y), Y: p.X}
	}
}

func (r Rotation) Wall(size int, w board.Wall) board.Wall {
	// The rotated anchor is a corner of the rotated box, but not
	// necessarily its top-left corner.
	c := r.Pos(size, board.Pos{X: w.X, Y: w.Y})
	switch r.norm() {
	case 0:
		return w
	case 1:
		return board.Wall{X: c.X, Y: c.Y - 1, Vertical: !w.Vertical}
	case 2:
		return board.Wall{X: c.X - 1, Y: c.Y - 1, Vertical: w.Vertical}
	default:
		return board.Wall{X: c.X - 1, Y: c.Y, Vertical: !w.Vertical}
	}
}

func (r Rotation) Move(size int, m board.Move) board.Move {
	if m.IsWall() {
		return board.Place(r.Wall(size, m.Wall()))
	}
	return board.StepTo(r.Pos(size, m.Pos()))
}

func (r Rotation) Side(s board.Side) board.Side {
	return board.Side((int(s) + int(r.norm())) % 4)
}

func (r Rotation) Player(size int, p board.Player) board.Player {
	return board.Player{Pos: r.Pos(size, p.Pos), Walls: p.Walls}
}

// Goal is the edge seat must reach, in the match's frame.
func Goal(n, seat int) board.Side {
	return Quarters(n, seat).Inverse().Side(board.South)
}

// Start is the edge seat begins on, in the match's frame.
func Start(n, seat int) board.Side {
	return Goal(n, seat).Opposite()
}
