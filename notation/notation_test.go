package notation

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorbot/quorbot/board"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in  string
		out board.Move
	}{
		{"4 1", board.StepTo(board.Pos{X: 4, Y: 1})},
		{" 0 8\n", board.StepTo(board.Pos{X: 0, Y: 8})},
		{"3 5 0", board.Place(board.Wall{X: 3, Y: 5})},
		{"7 0 1", board.Place(board.Wall{X: 7, Y: 0, Vertical: true})},
		{"-1 -1", board.StepTo(board.Pos{X: -1, Y: -1})},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if assert.NoError(t, err, tc.in) {
			assert.Equal(t, tc.out, got, tc.in)
		}
	}

	for _, bad := range []string{"", "4", "a b", "1 2 3", "1 2 1 0"} {
		_, err := ParseMove(bad)
		assert.ErrorIs(t, err, ErrBadMove, bad)
	}
}

func TestFormatMove(t *testing.T) {
	assert.Equal(t, "4 1", FormatMove(board.StepTo(board.Pos{X: 4, Y: 1})))
	assert.Equal(t, "2 6 1", FormatMove(board.Place(board.Wall{X: 2, Y: 6, Vertical: true})))
	assert.Equal(t, "2 6 0", FormatMove(board.Place(board.Wall{X: 2, Y: 6})))
}

const transcript = `2 1 9
4 0 10
4 8 10
2
4 1 10
4 8 10
1
3 3 1 0
-1
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(transcript))
	h, err := r.ReadHeader()
	require.NoError(t, err)
	assert.Equal(t, &Header{
		Players: 2,
		Seat:    1,
		Size:    9,
		Initial: []board.Player{
			{Pos: board.Pos{X: 4, Y: 0}, Walls: 10},
			{Pos: board.Pos{X: 4, Y: 8}, Walls: 10},
		},
	}, h)

	s, err := r.ReadTick()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Tick)
	assert.Equal(t, 1, s.Seat)
	assert.Equal(t, board.Pos{X: 4, Y: 1}, s.Players[0].Pos)
	assert.Equal(t, []board.PlacedWall{
		{Wall: board.Wall{X: 3, Y: 3, Vertical: true}, Who: 0},
	}, s.Walls)

	_, err = r.ReadTick()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader(strings.NewReader("2 0 9\n4 0 10\n"))
	_, err := r.ReadHeader()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	r = NewReader(strings.NewReader(""))
	_, err = r.ReadHeader()
	assert.Equal(t, io.EOF, err)

	r = NewReader(strings.NewReader("2 2 9"))
	_, err = r.ReadHeader()
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	h := &Header{
		Players: 2,
		Seat:    1,
		Size:    9,
		Initial: []board.Player{
			{Pos: board.Pos{X: 4, Y: 0}, Walls: 10},
			{Pos: board.Pos{X: 4, Y: 8}, Walls: 10},
		},
	}
	snap := &board.Snapshot{
		Tick:    2,
		Seat:    1,
		Size:    9,
		Players: []board.Player{{Pos: board.Pos{X: 4, Y: 1}, Walls: 10}, h.Initial[1]},
		Walls:   []board.PlacedWall{{Wall: board.Wall{X: 3, Y: 3, Vertical: true}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	require.NoError(t, WriteTick(&buf, snap))
	require.NoError(t, WriteEnd(&buf))
	assert.Equal(t, transcript, buf.String())
}
