package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/notation"
)

// NewCLIPlayer reads commands typed in notation: "x y" to move, "x y v"
// to place a wall.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) ai.Bot {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(ctx context.Context, s *board.Snapshot) board.Move {
	for {
		fmt.Fprintf(c.out, "player %d> ", s.Seat)
		line, err := c.in.ReadString('\n')
		if err != nil {
			panic(err)
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return m
	}
}
