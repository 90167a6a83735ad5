package board

import (
	"errors"
	"math"
	"sort"
)

// Unreachable is the distance reported when no path to the goal exists.
const Unreachable = math.MaxInt32

var (
	ErrOutOfRange = errors.New("wall is out of range")
	ErrOverlap    = errors.New("wall overlaps an existing wall")
	ErrCrossing   = errors.New("wall crosses an existing wall")
	ErrAbutting   = errors.New("wall extends an existing wall")
)

type CellBorders struct {
	Top, Right, Bottom, Left bool
}

// Board is a square grid of cell borders together with the ledger of
// walls that produced them. The outer edge of the grid is always
// blocked.
type Board struct {
	size  int
	cells []CellBorders
	walls map[Wall]struct{}
}

// New builds a board from the permanent boundary and the given walls.
// The walls are assumed to be legal and are not validated.
func New(size int, walls ...Wall) *Board {
	b := &Board{
		size:  size,
		cells: make([]CellBorders, size*size),
		walls: make(map[Wall]struct{}, len(walls)),
	}
	for i := 0; i < size; i++ {
		b.cell(i, 0).Top = true
		b.cell(size-1, i).Right = true
		b.cell(i, size-1).Bottom = true
		b.cell(0, i).Left = true
	}
	for _, w := range walls {
		b.AddWall(w)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) cell(x, y int) *CellBorders {
	return &b.cells[y*b.size+x]
}

func (b *Board) At(x, y int) CellBorders {
	return b.cells[y*b.size+x]
}

// Blocked reports whether moving from p in direction d crosses a
// blocked edge.
func (b *Board) Blocked(p Pos, d Direction) bool {
	c := b.At(p.X, p.Y)
	switch d {
	case Left:
		return c.Left
	case Right:
		return c.Right
	case Up:
		return c.Top
	default:
		return c.Bottom
	}
}

func (b *Board) AddWall(w Wall) {
	b.setWall(w, true)
	b.walls[w] = struct{}{}
}

func (b *Board) RemoveWall(w Wall) {
	b.setWall(w, false)
	delete(b.walls, w)
}

func (b *Board) setWall(w Wall, state bool) {
	if w.Vertical {
		b.cell(w.X, w.Y).Right = state
		b.cell(w.X, w.Y+1).Right = state
		b.cell(w.X+1, w.Y).Left = state
		b.cell(w.X+1, w.Y+1).Left = state
	} else {
		b.cell(w.X, w.Y).Bottom = state
		b.cell(w.X+1, w.Y).Bottom = state
		b.cell(w.X, w.Y+1).Top = state
		b.cell(w.X+1, w.Y+1).Top = state
	}
}

func (b *Board) HasWall(w Wall) bool {
	_, ok := b.walls[w]
	return ok
}

// CheckWall returns nil if w may be added to the board, or the
// reason it may not.
func (b *Board) CheckWall(w Wall) error {
	if !w.In(b.size) {
		return ErrOutOfRange
	}
	if b.HasWall(w) {
		return ErrOverlap
	}
	if b.HasWall(w.Crossing()) {
		return ErrCrossing
	}
	for _, n := range w.collinear() {
		if b.HasWall(n) {
			return ErrAbutting
		}
	}
	return nil
}

func (b *Board) IsLegal(w Wall) bool {
	return b.CheckWall(w) == nil
}

// LegalWalls returns every wall that could be added to the board,
// ordered by anchor column, then row, vertical before horizontal.
func (b *Board) LegalWalls() []Wall {
	var out []Wall
	for x := 0; x < b.size-1; x++ {
		for y := 0; y < b.size-1; y++ {
			for _, v := range [...]bool{true, false} {
				w := Wall{X: x, Y: y, Vertical: v}
				if b.IsLegal(w) {
					out = append(out, w)
				}
			}
		}
	}
	return out
}

// Walls returns the ledger in the same order LegalWalls uses.
func (b *Board) Walls() []Wall {
	out := make([]Wall, 0, len(b.walls))
	for w := range b.walls {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].less(out[j])
	})
	return out
}

func (b *Board) Clone() *Board {
	out := &Board{
		size:  b.size,
		cells: make([]CellBorders, len(b.cells)),
		walls: make(map[Wall]struct{}, len(b.walls)),
	}
	copy(out.cells, b.cells)
	for w := range b.walls {
		out.walls[w] = struct{}{}
	}
	return out
}
