// Package game referees a match: it tracks pawns, walls and turns,
// and validates every command against the full rules.
package game

import (
	"errors"
	"math"

	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/symmetry"
)

type Config struct {
	Size    int
	Players int
	Walls   int
	Cutoff  int
}

var ErrPlayers = errors.New("a match needs 2 or 4 players")

// tieFactor scales the share of a point awarded by path length when a
// match is cut off without a winner.
const tieFactor = 0.33

func (c *Config) defaults() error {
	if c.Size == 0 {
		c.Size = 9
	}
	if c.Players == 0 {
		c.Players = 2
	}
	if c.Players != 2 && c.Players != 4 {
		return ErrPlayers
	}
	if c.Walls == 0 {
		c.Walls = 20 / c.Players
	}
	if c.Cutoff == 0 {
		if c.Players == 2 {
			c.Cutoff = 50
		} else {
			c.Cutoff = 30
		}
	}
	return nil
}

type State struct {
	cfg     *Config
	b       *board.Board
	players []board.Player
	walls   []board.PlacedWall
	tick    int
	toMove  int
}

var offBoard = board.Pos{X: -1, Y: -1}

// New sets up a match with every pawn in the middle of the edge
// opposite its goal.
func New(cfg Config) (*State, error) {
	if err := cfg.defaults(); err != nil {
		return nil, err
	}
	s := &State{
		cfg: &cfg,
		b:   board.New(cfg.Size),
	}
	mid := cfg.Size / 2
	for seat := 0; seat < cfg.Players; seat++ {
		var p board.Pos
		switch symmetry.Start(cfg.Players, seat) {
		case board.South:
			p = board.Pos{X: mid, Y: cfg.Size - 1}
		case board.North:
			p = board.Pos{X: mid, Y: 0}
		case board.East:
			p = board.Pos{X: cfg.Size - 1, Y: mid}
		default:
			p = board.Pos{X: 0, Y: mid}
		}
		s.players = append(s.players, board.Player{Pos: p, Walls: cfg.Walls})
	}
	return s, nil
}

// FromSnapshot rebuilds the state a bot was shown.
func FromSnapshot(snap *board.Snapshot) *State {
	cfg := Config{Size: snap.Size, Players: len(snap.Players)}
	cfg.defaults()
	s := &State{
		cfg:     &cfg,
		b:       snap.Board(),
		players: append([]board.Player(nil), snap.Players...),
		walls:   append([]board.PlacedWall(nil), snap.Walls...),
		toMove:  snap.Seat,
	}
	if snap.Tick > 0 {
		s.tick = snap.Tick - 1
	}
	return s
}

func (s *State) Config() Config {
	return *s.cfg
}

func (s *State) Size() int {
	return s.cfg.Size
}

func (s *State) Tick() int {
	return s.tick
}

func (s *State) ToMove() int {
	return s.toMove
}

func (s *State) Player(seat int) board.Player {
	return s.players[seat]
}

func (s *State) Players() []board.Player {
	return append([]board.Player(nil), s.players...)
}

func (s *State) Walls() []board.PlacedWall {
	return append([]board.PlacedWall(nil), s.walls...)
}

// Board returns the live board. Callers must not modify it.
func (s *State) Board() *board.Board {
	return s.b
}

func (s *State) Active(seat int) bool {
	return s.players[seat].In(s.cfg.Size)
}

func (s *State) Goal(seat int) board.Side {
	return symmetry.Goal(s.cfg.Players, seat)
}

// Snapshot is what the referee sends seat at the start of its turn.
func (s *State) Snapshot(seat int) *board.Snapshot {
	return &board.Snapshot{
		Tick:    s.tick + 1,
		Seat:    seat,
		Size:    s.cfg.Size,
		Players: s.Players(),
		Walls:   s.Walls(),
	}
}

func (s *State) clone() *State {
	return &State{
		cfg:     s.cfg,
		b:       s.b.Clone(),
		players: s.Players(),
		walls:   s.Walls(),
		tick:    s.tick,
		toMove:  s.toMove,
	}
}

// Winner returns the seat that reached its goal, or the last seat left
// on the board.
func (s *State) Winner() (int, bool) {
	active, last := 0, -1
	for seat, p := range s.players {
		if !s.Active(seat) {
			continue
		}
		if s.Goal(seat).Reached(s.cfg.Size, p.Pos) {
			return seat, true
		}
		active++
		last = seat
	}
	if active == 1 {
		return last, true
	}
	return -1, false
}

func (s *State) Over() bool {
	if _, ok := s.Winner(); ok {
		return true
	}
	return s.tick >= s.cfg.Cutoff
}

// Distances are each seat's shortest walk to its goal, ignoring pawns.
func (s *State) Distances() []int {
	out := make([]int, len(s.players))
	for seat, p := range s.players {
		out[seat] = s.b.GoalDistance(p.Pos, s.Goal(seat))
	}
	return out
}

// Scores gives the winner a full point. A match cut off without a
// winner splits a fraction of a point, weighted heavily toward the
// seats closest to their goals.
func (s *State) Scores() []float64 {
	scores := make([]float64, len(s.players))
	if w, ok := s.Winner(); ok {
		scores[w] = 1
		return scores
	}
	var sum float64
	weights := make([]float64, len(s.players))
	for seat, d := range s.Distances() {
		if d == board.Unreachable || d == 0 {
			continue
		}
		weights[seat] = math.Pow(1/float64(d), 5)
		sum += weights[seat]
	}
	if sum == 0 {
		return scores
	}
	for seat := range scores {
		scores[seat] = tieFactor * weights[seat] / sum
	}
	return scores
}
