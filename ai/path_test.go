package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quorbot/quorbot/board"
)

func TestShortestPath(t *testing.T) {
	cases := []struct {
		name     string
		walls    []board.Wall
		from     board.Pos
		occupied []board.Pos
		want     Path
	}{
		{
			"open board",
			nil,
			board.Pos{X: 4, Y: 0}, nil,
			Path{board.Pos{X: 4, Y: 1}, 8},
		},
		{
			"jump",
			nil,
			board.Pos{X: 4, Y: 0}, []board.Pos{{X: 4, Y: 0}, {X: 4, Y: 1}},
			Path{board.Pos{X: 4, Y: 2}, 7},
		},
		{
			"jump onto pawn prefers left",
			nil,
			board.Pos{X: 4, Y: 0}, []board.Pos{{X: 4, Y: 1}, {X: 4, Y: 2}},
			Path{board.Pos{X: 3, Y: 0}, 9},
		},
		{
			"jump blocked by wall",
			[]board.Wall{{X: 4, Y: 1}},
			board.Pos{X: 4, Y: 0}, []board.Pos{{X: 4, Y: 1}},
			Path{board.Pos{X: 3, Y: 0}, 9},
		},
		{
			"distant pawns ignored",
			nil,
			board.Pos{X: 4, Y: 0}, []board.Pos{{X: 4, Y: 3}, {X: 4, Y: 8}},
			Path{board.Pos{X: 4, Y: 1}, 8},
		},
		{
			"already home",
			nil,
			board.Pos{X: 2, Y: 8}, nil,
			Path{board.Pos{X: 2, Y: 8}, 0},
		},
		{
			"detour",
			[]board.Wall{{X: 3, Y: 0}, {X: 5, Y: 0}},
			board.Pos{X: 4, Y: 0}, nil,
			Path{board.Pos{X: 3, Y: 0}, 10},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := board.New(9, tc.walls...)
			got := ShortestPath(b, tc.occupied, tc.from)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Found())
		})
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	b := board.New(9, board.Wall{X: 0, Y: 0, Vertical: true}, board.Wall{X: 0, Y: 1})
	p := ShortestPath(b, nil, board.Pos{X: 0, Y: 0})
	assert.False(t, p.Found())
	assert.Equal(t, board.Unreachable, p.Dist)

	assert.False(t, ShortestPath(board.New(9), nil, board.Pos{X: -1, Y: -1}).Found())
}

func TestShortestPathSmallBoards(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		b := board.New(size)
		for x := 0; x < size; x++ {
			p := ShortestPath(b, nil, board.Pos{X: x, Y: 0})
			assert.Equal(t, size-1, p.Dist, "size=%d x=%d", size, x)
			assert.Equal(t, board.Pos{X: x, Y: 1}, p.Step)
		}
	}
}
