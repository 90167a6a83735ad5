package ai

import (
	"context"

	"github.com/quorbot/quorbot/board"
)

// Bot chooses the next command for the seat named in the snapshot.
type Bot interface {
	GetMove(ctx context.Context, s *board.Snapshot) board.Move
}
