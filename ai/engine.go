package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/symmetry"
)

const DefaultThreshold = 3

type Config struct {
	// Threshold is how many moves an opponent's best wall must add to
	// our path before we spend a wall to counter it.
	Threshold int
}

// Reason records which rule produced a decision.
type Reason byte

const (
	ReasonStep Reason = iota
	ReasonGoal
	ReasonCounter
	ReasonGuard
	ReasonStuck
)

func (r Reason) String() string {
	switch r {
	case ReasonGoal:
		return "goal"
	case ReasonCounter:
		return "counter"
	case ReasonGuard:
		return "guard"
	case ReasonStuck:
		return "stuck"
	default:
		return "step"
	}
}

// Analysis explains a decision. Move is in the match's coordinates;
// Path and Threat are in the mover's canonical frame.
type Analysis struct {
	Move   board.Move
	Reason Reason

	Path       Path
	Threat     Threat
	Threatened bool

	Elapsed time.Duration
}

// Engine picks one command per turn: step along a shortest path, unless
// the opponent's most damaging reply is bad enough to block in advance.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) GetMove(_ context.Context, s *board.Snapshot) board.Move {
	return e.Analyze(s).Move
}

// Decide returns the default engine's command for seat in an n-player
// match on an m×m board.
func Decide(n, seat, m int, players []board.Player, walls []board.Wall) board.Move {
	s := &board.Snapshot{Seat: seat, Size: m, Players: players}
	for _, w := range walls {
		s.Walls = append(s.Walls, board.PlacedWall{Wall: w})
	}
	return NewEngine(Config{}).analyze(n, s).Move
}

func (e *Engine) Analyze(s *board.Snapshot) Analysis {
	return e.analyze(len(s.Players), s)
}

func (e *Engine) analyze(n int, s *board.Snapshot) Analysis {
	start := time.Now()
	v := newView(n, s)

	var a Analysis
	var m board.Move
	a.Path = ShortestPath(v.b, v.occupied(), v.me())
	switch {
	case !a.Path.Found():
		a.Reason, m = ReasonStuck, v.fallback()
	case a.Path.Step.Y == v.size-1:
		a.Reason, m = ReasonGoal, board.StepTo(a.Path.Step)
	default:
		a.Reason, m = e.choose(v, &a)
	}
	a.Move = v.emit(m)
	a.Elapsed = time.Since(start)

	ev := log.Debug().
		Int("tick", s.Tick).
		Int("seat", s.Seat).
		Str("reason", a.Reason.String()).
		Dur("elapsed", a.Elapsed)
	if a.Path.Found() {
		ev = ev.Int("dist", a.Path.Dist)
	}
	if a.Threatened {
		ev = ev.Int("threat", a.Threat.Dist)
	}
	ev.Msg("decided")
	return a
}

func (e *Engine) choose(v *view, a *Analysis) (Reason, board.Move) {
	me := v.me()
	step := a.Path.Step

	// Look one wall ahead from where we are about to stand.
	a.Threat, a.Threatened = WorstWall(v.b, v.occupiedAfter(step), step, a.Path.Dist)
	if a.Threatened && a.Threat.Dist > a.Path.Dist+e.cfg.Threshold {
		counter := a.Threat.Wall.Crossing()
		if v.canPlace(counter) {
			return ReasonCounter, board.Place(counter)
		}
	}

	// Stepping straight ahead onto a cell with a player right behind it
	// would let that player jump us.
	if step == me.Step(board.Down) && v.taken(step.Step(board.Down)) {
		if guard, ok := v.guardWall(me); ok {
			return ReasonGuard, board.Place(guard)
		}
	}
	return ReasonStep, board.StepTo(step)
}

// view is one turn's board seen from the mover's seat, rotated so its
// goal is the south row.
type view struct {
	size    int
	seat    int
	rot     symmetry.Rotation
	b       *board.Board
	players []board.Player
	goals   []board.Side
}

func newView(n int, s *board.Snapshot) *view {
	rot := symmetry.Quarters(n, s.Seat)
	v := &view{
		size: s.Size,
		seat: s.Seat,
		rot:  rot,
		b:    board.New(s.Size),
	}
	for _, w := range s.Walls {
		v.b.AddWall(rot.Wall(s.Size, w.Wall))
	}
	for i, p := range s.Players {
		v.players = append(v.players, rot.Player(s.Size, p))
		v.goals = append(v.goals, rot.Side(symmetry.Goal(n, i)))
	}
	return v
}

func (v *view) me() board.Pos {
	return v.players[v.seat].Pos
}

func (v *view) occupied() []board.Pos {
	return board.Occupied(v.size, v.players)
}

func (v *view) occupiedAfter(step board.Pos) []board.Pos {
	out := make([]board.Pos, 0, len(v.players))
	for i, p := range v.players {
		if i == v.seat {
			out = append(out, step)
		} else if p.In(v.size) {
			out = append(out, p.Pos)
		}
	}
	return out
}

func (v *view) taken(p board.Pos) bool {
	for i, o := range v.players {
		if i != v.seat && o.Pos == p {
			return true
		}
	}
	return false
}

// canPlace reports whether the mover may place w now: it has a wall
// left, w fits, and every player on the board can still reach its
// goal afterwards.
func (v *view) canPlace(w board.Wall) bool {
	if v.players[v.seat].Walls <= 0 || !v.b.IsLegal(w) {
		return false
	}
	v.b.AddWall(w)
	defer v.b.RemoveWall(w)
	for i, p := range v.players {
		if !p.In(v.size) {
			continue
		}
		if v.b.GoalDistance(p.Pos, v.goals[i]) == board.Unreachable {
			return false
		}
	}
	return true
}

// guardWall is the horizontal wall directly behind me.
func (v *view) guardWall(me board.Pos) (board.Wall, bool) {
	if me.Y < 1 {
		return board.Wall{}, false
	}
	x := me.X
	if x > v.size-2 {
		x = v.size - 2
	}
	w := board.Wall{X: x, Y: me.Y - 1}
	return w, v.canPlace(w)
}

// fallback is used when the search finds no route from where we stand:
// take the pawn move nearest the goal if we can, otherwise place any
// wall, otherwise stay put.
func (v *view) fallback() board.Move {
	if moves := v.b.PawnMoves(v.me(), v.occupied()); len(moves) > 0 {
		best, dist := moves[0], v.b.GoalDistance(moves[0], board.South)
		for _, p := range moves[1:] {
			if d := v.b.GoalDistance(p, board.South); d < dist {
				best, dist = p, d
			}
		}
		return board.StepTo(best)
	}
	for _, w := range v.b.LegalWalls() {
		if v.canPlace(w) {
			return board.Place(w)
		}
	}
	return board.StepTo(v.me())
}

func (v *view) emit(m board.Move) board.Move {
	return v.rot.Inverse().Move(v.size, m)
}
