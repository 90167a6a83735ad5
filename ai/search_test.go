package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorbot/quorbot/board"
)

// corridor walls off the two leftmost columns below row 0.
func corridor() *board.Board {
	return board.New(9,
		board.Wall{X: 1, Y: 1, Vertical: true},
		board.Wall{X: 1, Y: 3, Vertical: true},
		board.Wall{X: 1, Y: 5, Vertical: true},
		board.Wall{X: 1, Y: 7, Vertical: true},
	)
}

func TestWorstWallCorridor(t *testing.T) {
	b := corridor()
	before := b.Clone()
	from := board.Pos{X: 0, Y: 2}

	threat, ok := WorstWall(b, []board.Pos{from}, from, 7)
	require.True(t, ok)
	assert.Equal(t, board.Wall{X: 0, Y: 2}, threat.Wall)
	assert.Equal(t, 12, threat.Dist)
	assert.Equal(t, before, b)
}

func TestWorstWallOpenBoard(t *testing.T) {
	b := board.New(9)
	from := board.Pos{X: 4, Y: 4}
	base := ShortestPath(b, nil, from).Dist

	threat, ok := WorstWall(b, nil, from, base)
	require.True(t, ok)
	assert.Greater(t, threat.Dist, base)
	assert.True(t, b.IsLegal(threat.Wall))
	assert.Empty(t, b.Walls())

	_, ok = WorstWall(b, nil, from, 100)
	assert.False(t, ok)
}

func TestWorstWallSkipsSealing(t *testing.T) {
	// Row 0 is sealed below columns 0-3; the vertical wall right of
	// column 3 would leave no way out and is not a candidate.
	b := board.New(5, board.Wall{X: 0, Y: 0}, board.Wall{X: 2, Y: 0})
	from := board.Pos{X: 2, Y: 0}
	base := ShortestPath(b, nil, from)
	require.True(t, base.Found())

	threat, ok := WorstWall(b, nil, from, base.Dist)
	require.True(t, ok)
	assert.True(t, threat.Dist < board.Unreachable)
	assert.NotEqual(t, board.Wall{X: 3, Y: 0, Vertical: true}, threat.Wall)
}

// On the corridor the most damaging wall is {0,2,h}. Each case makes it
// illegal a different way; it must never come back as the threat, and
// the existing walls must survive the search.
func TestWorstWallOnlyLegal(t *testing.T) {
	best := board.Wall{X: 0, Y: 2}
	cases := []struct {
		name  string
		block board.Wall
		want  error
	}{
		{"overlap", best, board.ErrOverlap},
		{"crossing", best.Crossing(), board.ErrCrossing},
		{"abutting", board.Wall{X: 1, Y: 2}, board.ErrAbutting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := corridor()
			b.AddWall(tc.block)
			require.ErrorIs(t, b.CheckWall(best), tc.want)
			before := b.Clone()
			from := board.Pos{X: 0, Y: 2}
			base := ShortestPath(b, nil, from)
			require.True(t, base.Found())

			threat, ok := WorstWall(b, nil, from, base.Dist)
			require.True(t, ok)
			assert.NotEqual(t, best, threat.Wall)
			assert.True(t, b.IsLegal(threat.Wall), "%+v", threat.Wall)
			assert.Greater(t, threat.Dist, base.Dist)
			assert.Equal(t, before, b)
		})
	}
}
