package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quorbot/quorbot/board"
)

func TestQuarters(t *testing.T) {
	cases := []struct {
		n, seat int
		want    Rotation
	}{
		{2, 0, 0},
		{2, 1, 2},
		{4, 0, 0},
		{4, 1, 1},
		{4, 2, 2},
		{4, 3, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Quarters(tc.n, tc.seat), "n=%d seat=%d", tc.n, tc.seat)
	}
}

func TestGoal(t *testing.T) {
	assert.Equal(t, board.South, Goal(2, 0))
	assert.Equal(t, board.North, Goal(2, 1))
	assert.Equal(t, []board.Side{board.South, board.West, board.North, board.East},
		[]board.Side{Goal(4, 0), Goal(4, 1), Goal(4, 2), Goal(4, 3)})
	assert.Equal(t, board.East, Start(4, 1))
}

func TestPosRoundTrip(t *testing.T) {
	for size := 2; size <= 9; size++ {
		for q := Rotation(-4); q < 8; q++ {
			for x := 0; x < size; x++ {
				for y := 0; y < size; y++ {
					p := board.Pos{X: x, Y: y}
					r := q.Pos(size, p)
					assert.True(t, r.In(size), "size=%d q=%d %v -> %v", size, q, p, r)
					assert.Equal(t, p, q.Inverse().Pos(size, r), "size=%d q=%d", size, q)
				}
			}
		}
	}
}

func TestWallRoundTrip(t *testing.T) {
	for size := 3; size <= 9; size++ {
		for q := Rotation(-4); q < 8; q++ {
			for x := 0; x < size-1; x++ {
				for y := 0; y < size-1; y++ {
					for _, v := range []bool{true, false} {
						w := board.Wall{X: x, Y: y, Vertical: v}
						r := q.Wall(size, w)
						assert.True(t, r.In(size), "size=%d q=%d %+v -> %+v", size, q, w, r)
						assert.Equal(t, w, q.Inverse().Wall(size, r), "size=%d q=%d", size, q)
						if q.norm()%2 == 1 {
							assert.NotEqual(t, w.Vertical, r.Vertical)
						} else {
							assert.Equal(t, w.Vertical, r.Vertical)
						}
					}
				}
			}
		}
	}
}

func blockedBetween(b *board.Board, a, c board.Pos) bool {
	for _, d := range board.Directions {
		if a.Step(d) == c {
			return b.Blocked(a, d)
		}
	}
	panic("cells are not adjacent")
}

// A rotated wall must block exactly the rotated edges.
func TestWallGeometry(t *testing.T) {
	const size = 6
	for q := Rotation(0); q < 4; q++ {
		for _, w := range board.New(size).LegalWalls() {
			orig := board.New(size, w)
			rot := board.New(size, q.Wall(size, w))
			for x := 0; x < size; x++ {
				for y := 0; y < size; y++ {
					p := board.Pos{X: x, Y: y}
					for _, d := range board.Directions {
						n := p.Step(d)
						if !n.In(size) {
							continue
						}
						assert.Equal(t,
							orig.Blocked(p, d),
							blockedBetween(rot, q.Pos(size, p), q.Pos(size, n)),
							"q=%d wall=%+v edge %v-%v", q, w, p, n)
					}
				}
			}
		}
	}
}

func TestSideRotation(t *testing.T) {
	const size = 7
	for q := Rotation(0); q < 4; q++ {
		for s := board.South; s <= board.West; s++ {
			for x := 0; x < size; x++ {
				for y := 0; y < size; y++ {
					p := board.Pos{X: x, Y: y}
					assert.Equal(t, s.Reached(size, p), q.Side(s).Reached(size, q.Pos(size, p)),
						"q=%d side=%s p=%v", q, s, p)
				}
			}
		}
	}
}

func TestOffBoardStaysOff(t *testing.T) {
	out := board.Pos{X: -1, Y: -1}
	for q := Rotation(0); q < 4; q++ {
		assert.False(t, q.Pos(9, out).In(9))
	}
}
