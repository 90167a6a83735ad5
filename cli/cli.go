package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/game"
	"github.com/quorbot/quorbot/notation"
)

// attempts is how many rejected commands a player gets per turn
// before the referee moves for it.
const attempts = 3

type CLI struct {
	s     *game.State
	moves []board.Move

	Config  game.Config
	Out     io.Writer
	Players []ai.Bot
	Rand    *rand.Rand
}

func (c *CLI) Play(ctx context.Context) (*game.State, error) {
	var err error
	c.moves = nil
	if c.s, err = game.New(c.Config); err != nil {
		return nil, err
	}
	if len(c.Players) != c.s.Config().Players {
		return nil, fmt.Errorf("%d players for a %d-player game", len(c.Players), c.s.Config().Players)
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	for {
		c.render()
		if c.s.Over() {
			c.summary()
			return c.s, nil
		}
		seat := c.s.ToMove()
		if !c.s.CanMove() {
			fmt.Fprintf(c.Out, "%d. player %d has no move and is out\n", c.s.Tick()+1, seat)
			c.s = c.s.Eliminate()
			continue
		}
		c.turn(ctx, seat)
	}
}

func (c *CLI) turn(ctx context.Context, seat int) {
	for i := 0; i < attempts; i++ {
		m := c.Players[seat].GetMove(ctx, c.s.Snapshot(seat))
		if c.apply(seat, m) == nil {
			return
		}
	}
	m, _ := c.s.DefaultMove(c.Rand)
	fmt.Fprintf(c.Out, "playing a random move for player %d\n", seat)
	c.apply(seat, m)
}

func (c *CLI) apply(seat int, m board.Move) error {
	next, err := c.s.Move(m)
	if err != nil {
		fmt.Fprintln(c.Out, "illegal move:", err)
		return err
	}
	fmt.Fprintf(c.Out, "%d. player %d: %s\n", c.s.Tick()+1, seat, notation.FormatMove(m))
	c.s = next
	c.moves = append(c.moves, m)
	return nil
}

func (c *CLI) summary() {
	fmt.Fprintf(c.Out, "Game Over! ")
	if w, ok := c.s.Winner(); ok {
		fmt.Fprintf(c.Out, "Player %d wins.\n", w)
		return
	}
	fmt.Fprintf(c.Out, "Cut off at tick %d.\n", c.s.Tick())
	for seat, sc := range c.s.Scores() {
		fmt.Fprintf(c.Out, "player %d: %.3f\n", seat, sc)
	}
}

func (c *CLI) Moves() []board.Move {
	return c.moves
}

func (c *CLI) render() {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "[player %d to play]\n", c.s.ToMove())
	RenderBoard(c.Out, c.s.Board(), c.s.Players())
}

// RenderBoard draws b with each pawn shown as its seat number, then a
// line with each player's remaining walls.
func RenderBoard(out io.Writer, b *board.Board, players []board.Player) {
	size := b.Size()
	glyph := func(x, y int) byte {
		for seat, p := range players {
			if p.X == x && p.Y == y {
				return byte('0' + seat)
			}
		}
		return '.'
	}
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(&sb, " %2d ", x)
	}
	sb.WriteString("\n   +")
	sb.WriteString(strings.Repeat("---+", size))
	sb.WriteString("\n")
	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%2d |", y)
		for x := 0; x < size; x++ {
			fmt.Fprintf(&sb, " %c ", glyph(x, y))
			if b.At(x, y).Right {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n   +")
		for x := 0; x < size; x++ {
			if b.At(x, y).Bottom {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
			sb.WriteByte('+')
		}
		sb.WriteString("\n")
	}
	sb.WriteString("walls:")
	for seat, p := range players {
		fmt.Fprintf(&sb, " %d:%d", seat, p.Walls)
	}
	sb.WriteString("\n")
	io.WriteString(out, sb.String())
}
