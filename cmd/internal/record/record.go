// Package record wraps the engine so that each decision it makes can
// be written to the game log.
package record

import (
	"context"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/logs"
	"github.com/quorbot/quorbot/notation"
)

type Recorder struct {
	Engine    *ai.Engine
	Decisions []logs.Decision
}

func New(cfg ai.Config) *Recorder {
	return &Recorder{Engine: ai.NewEngine(cfg)}
}

func (r *Recorder) GetMove(_ context.Context, s *board.Snapshot) board.Move {
	a := r.Engine.Analyze(s)
	r.Decisions = append(r.Decisions, logs.Decision{
		Tick:    s.Tick,
		Seat:    s.Seat,
		Move:    notation.FormatMove(a.Move),
		Reason:  a.Reason.String(),
		Elapsed: a.Elapsed.Microseconds(),
	})
	return a.Move
}

// Flush writes the recorded decisions under gameID and forgets them.
func (r *Recorder) Flush(repo *logs.Repository, gameID string) error {
	if len(r.Decisions) == 0 {
		return nil
	}
	for i := range r.Decisions {
		r.Decisions[i].GameID = gameID
	}
	err := repo.InsertDecisions(r.Decisions)
	r.Decisions = nil
	return err
}
