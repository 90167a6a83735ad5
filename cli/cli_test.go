package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
)

func TestRenderBoard(t *testing.T) {
	b := board.New(3, board.Wall{X: 0, Y: 0, Vertical: true}, board.Wall{X: 1, Y: 1})
	var out bytes.Buffer
	RenderBoard(&out, b, []board.Player{
		{Pos: board.Pos{X: 1, Y: 0}, Walls: 2},
		{Pos: board.Pos{X: 1, Y: 2}, Walls: 3},
	})
	want := strings.Join([]string{
		"     0   1   2 ",
		"   +---+---+---+",
		" 0 | . | 0   . |",
		"   +   +   +   +",
		" 1 | . | .   . |",
		"   +   +---+---+",
		" 2 | .   1   . |",
		"   +---+---+---+",
		"walls: 0:2 1:3",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestPlayEngines(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Out:     &out,
		Players: []ai.Bot{ai.NewEngine(ai.Config{}), ai.NewEngine(ai.Config{})},
	}
	s, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Over())
	assert.NotEmpty(t, c.Moves())
	assert.Contains(t, out.String(), "Game Over!")
}

func TestPlayHuman(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("nonsense\n4 5\n4 1\n"))
	human := NewCLIPlayer(&out, in)
	m := human.GetMove(context.Background(), &board.Snapshot{Size: 9})
	assert.Equal(t, board.StepTo(board.Pos{X: 4, Y: 5}), m)
	assert.Contains(t, out.String(), "parse error")
}

func TestPlayWrongSeats(t *testing.T) {
	c := &CLI{Out: &bytes.Buffer{}, Players: []ai.Bot{ai.NewRandom(1)}}
	_, err := c.Play(context.Background())
	assert.Error(t, err)
}
