package tei

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/notation"
)

// Engine runs a bot on the bot side of the protocol: it reads the
// match header and one tick at a time, answering each with a command.
type Engine struct {
	// MoveTime, if set, bounds the context handed to the bot.
	MoveTime time.Duration
	// Observe is called after each answer.
	Observe func(s *board.Snapshot, m board.Move, elapsed time.Duration)

	bot ai.Bot
	in  *notation.Reader
	out io.Writer
}

func NewEngine(in io.Reader, out io.Writer, bot ai.Bot) *Engine {
	return &Engine{
		bot: bot,
		in:  notation.NewReader(in),
		out: out,
	}
}

// Run plays one match. It returns nil when the referee ends the match
// or closes the stream.
func (e *Engine) Run(ctx context.Context) error {
	hdr, err := e.in.ReadHeader()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	log.Info().
		Int("players", hdr.Players).
		Int("seat", hdr.Seat).
		Int("size", hdr.Size).
		Msg("new game")

	for {
		s, err := e.in.ReadTick()
		if errors.Is(err, notation.ErrGameOver) || err == io.EOF {
			log.Info().Msg("game over")
			return nil
		}
		if err != nil {
			return err
		}
		start := time.Now()
		m := e.move(ctx, s)
		elapsed := time.Since(start)
		if _, err := fmt.Fprintln(e.out, notation.FormatMove(m)); err != nil {
			return err
		}
		if e.Observe != nil {
			e.Observe(s, m, elapsed)
		}
	}
}

func (e *Engine) move(ctx context.Context, s *board.Snapshot) board.Move {
	if e.MoveTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.MoveTime)
		defer cancel()
	}
	return e.bot.GetMove(ctx, s)
}
