package board

type Pos struct {
	X, Y int
}

func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{p.X + dx, p.Y + dy}
}

func (p Pos) In(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

type Direction byte

// Directions are listed in the order path searches expand them.
const (
	Left Direction = iota
	Right
	Up
	Down
)

var Directions = [...]Direction{Left, Right, Up, Down}

func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "down"
	}
}

// Wall is a barrier two cells long. X, Y is the top-left corner of
// the 2x2 box of cells it divides.
type Wall struct {
	X, Y     int
	Vertical bool
}

func (w Wall) In(size int) bool {
	return w.X >= 0 && w.X < size-1 && w.Y >= 0 && w.Y < size-1
}

// Crossing returns the wall occupying the same box with the other
// orientation.
func (w Wall) Crossing() Wall {
	return Wall{X: w.X, Y: w.Y, Vertical: !w.Vertical}
}

// collinear returns the walls that would overlap half of w.
func (w Wall) collinear() [2]Wall {
	if w.Vertical {
		return [2]Wall{{w.X, w.Y - 1, true}, {w.X, w.Y + 1, true}}
	}
	return [2]Wall{{w.X - 1, w.Y, false}, {w.X + 1, w.Y, false}}
}

func (w Wall) less(o Wall) bool {
	if w.X != o.X {
		return w.X < o.X
	}
	if w.Y != o.Y {
		return w.Y < o.Y
	}
	return w.Vertical && !o.Vertical
}

type PlacedWall struct {
	Wall
	Who int
}

type Player struct {
	Pos
	Walls int
}

// Side names an edge of the board.
type Side byte

// Sides are ordered so that a counter-clockwise quarter turn maps each
// side to the next one.
const (
	South Side = iota
	East
	North
	West
)

func (s Side) Opposite() Side {
	return (s + 2) % 4
}

func (s Side) Reached(size int, p Pos) bool {
	switch s % 4 {
	case South:
		return p.Y == size-1
	case East:
		return p.X == size-1
	case North:
		return p.Y == 0
	default:
		return p.X == 0
	}
}

func (s Side) String() string {
	switch s % 4 {
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	default:
		return "west"
	}
}
