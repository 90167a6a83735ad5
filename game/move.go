package game

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/quorbot/quorbot/board"
)

var (
	ErrIllegalStep = errors.New("pawn cannot reach that cell")
	ErrNoWalls     = errors.New("no walls left")
	ErrBlocksPath  = errors.New("wall cuts a player off from its goal")
	ErrGameOver    = errors.New("game is over")
)

// Move applies m for the seat to move and returns the resulting state.
func (s *State) Move(m board.Move) (*State, error) {
	if s.Over() {
		return nil, ErrGameOver
	}
	if err := s.check(m); err != nil {
		return nil, err
	}
	next := s.clone()
	me := &next.players[s.toMove]
	if m.IsWall() {
		next.b.AddWall(m.Wall())
		next.walls = append(next.walls, board.PlacedWall{Wall: m.Wall(), Who: s.toMove})
		me.Walls--
	} else {
		me.Pos = m.Pos()
	}
	next.advance()
	return next, nil
}

// Eliminate removes the seat to move from the board; used when it has
// no legal command.
func (s *State) Eliminate() *State {
	next := s.clone()
	next.players[s.toMove].Pos = offBoard
	next.advance()
	return next
}

func (s *State) advance() {
	s.tick++
	n := len(s.players)
	for i := 1; i <= n; i++ {
		seat := (s.toMove + i) % n
		if s.Active(seat) {
			s.toMove = seat
			return
		}
	}
}

func (s *State) occupied() []board.Pos {
	return board.Occupied(s.cfg.Size, s.players)
}

func (s *State) check(m board.Move) error {
	me := s.players[s.toMove]
	if !m.IsWall() {
		if !m.Pos().In(s.cfg.Size) {
			return ErrIllegalStep
		}
		for _, p := range s.b.PawnMoves(me.Pos, s.occupied()) {
			if p == m.Pos() {
				return nil
			}
		}
		return ErrIllegalStep
	}
	if me.Walls <= 0 {
		return ErrNoWalls
	}
	if err := s.b.CheckWall(m.Wall()); err != nil {
		return err
	}
	if s.blocksPath(m.Wall()) {
		return ErrBlocksPath
	}
	return nil
}

func (s *State) blocksPath(w board.Wall) bool {
	s.b.AddWall(w)
	defer s.b.RemoveWall(w)
	for seat, p := range s.players {
		if !s.Active(seat) {
			continue
		}
		if s.b.GoalDistance(p.Pos, s.Goal(seat)) == board.Unreachable {
			return true
		}
	}
	return false
}

func (s *State) pawnMoves() []board.Move {
	var out []board.Move
	for _, p := range s.b.PawnMoves(s.players[s.toMove].Pos, s.occupied()) {
		out = append(out, board.StepTo(p))
	}
	return out
}

func (s *State) wallMoves() []board.Move {
	if s.players[s.toMove].Walls <= 0 {
		return nil
	}
	var out []board.Move
	for _, w := range s.b.LegalWalls() {
		if !s.blocksPath(w) {
			out = append(out, board.Place(w))
		}
	}
	return out
}

// LegalMoves lists every command the seat to move may give, pawn
// moves first.
func (s *State) LegalMoves() []board.Move {
	return append(s.pawnMoves(), s.wallMoves()...)
}

func (s *State) CanMove() bool {
	return len(s.pawnMoves()) > 0 || len(s.wallMoves()) > 0
}

// DefaultMove is played for a seat whose own command was rejected: a
// random pawn move if there is one, otherwise a random wall.
func (s *State) DefaultMove(r *rand.Rand) (board.Move, bool) {
	if moves := s.pawnMoves(); len(moves) > 0 {
		return moves[r.Intn(len(moves))], true
	}
	if walls := s.wallMoves(); len(walls) > 0 {
		return walls[r.Intn(len(walls))], true
	}
	return board.Move{}, false
}
