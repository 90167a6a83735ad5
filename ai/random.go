package ai

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/game"
)

type RandomBot struct {
	r *rand.Rand
}

// GetMove plays a uniformly random legal command, or steps in place
// when there is none.
func (r *RandomBot) GetMove(_ context.Context, s *board.Snapshot) board.Move {
	moves := game.FromSnapshot(s).LegalMoves()
	if len(moves) == 0 {
		return board.StepTo(s.Me().Pos)
	}
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(seed int64) Bot {
	return &RandomBot{
		r: rand.New(rand.NewSource(uint64(seed))),
	}
}
