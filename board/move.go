package board

type MoveType byte

const (
	Step MoveType = iota
	PlaceWall
)

// Move is one command: either step the pawn to X, Y or place a wall
// anchored at X, Y.
type Move struct {
	Type     MoveType
	X, Y     int
	Vertical bool
}

func StepTo(p Pos) Move {
	return Move{Type: Step, X: p.X, Y: p.Y}
}

func Place(w Wall) Move {
	return Move{Type: PlaceWall, X: w.X, Y: w.Y, Vertical: w.Vertical}
}

func (m Move) IsWall() bool {
	return m.Type == PlaceWall
}

func (m Move) Pos() Pos {
	return Pos{m.X, m.Y}
}

func (m Move) Wall() Wall {
	return Wall{X: m.X, Y: m.Y, Vertical: m.Vertical}
}

// Snapshot is the complete state of a match as handed to a bot at the
// start of its turn, in the match's own coordinates.
type Snapshot struct {
	Tick    int
	Seat    int
	Size    int
	Players []Player
	Walls   []PlacedWall
}

func (s *Snapshot) Board() *Board {
	b := New(s.Size)
	for _, w := range s.Walls {
		b.AddWall(w.Wall)
	}
	return b
}

func (s *Snapshot) Me() Player {
	return s.Players[s.Seat]
}

// Occupied returns the positions of every player still on the board.
func (s *Snapshot) Occupied() []Pos {
	return Occupied(s.Size, s.Players)
}

func Occupied(size int, players []Player) []Pos {
	out := make([]Pos, 0, len(players))
	for _, p := range players {
		if p.In(size) {
			out = append(out, p.Pos)
		}
	}
	return out
}
