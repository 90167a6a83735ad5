package ai

import "github.com/quorbot/quorbot/board"

// Path is the result of a shortest-path search: the first cell to step
// to and the number of moves to reach the goal row.
type Path struct {
	Step board.Pos
	Dist int
}

func (p Path) Found() bool {
	return p.Dist != board.Unreachable
}

var noPath = Path{Dist: board.Unreachable}

type search struct {
	b    *board.Board
	size int
	occ  []bool

	visited []bool
	first   []board.Pos
	dist    []int
	queue   []board.Pos
}

func newSearch(b *board.Board, occupied []board.Pos) *search {
	size := b.Size()
	s := &search{
		b:       b,
		size:    size,
		occ:     make([]bool, size*size),
		visited: make([]bool, size*size),
		first:   make([]board.Pos, size*size),
		dist:    make([]int, size*size),
	}
	for _, p := range occupied {
		if p.In(size) {
			s.occ[s.idx(p)] = true
		}
	}
	return s
}

func (s *search) idx(p board.Pos) int {
	return p.Y*s.size + p.X
}

func (s *search) push(p board.Pos, first board.Pos, dist int) {
	i := s.idx(p)
	s.visited[i] = true
	s.first[i] = first
	s.dist[i] = dist
	s.queue = append(s.queue, p)
}

// ShortestPath finds a shortest route from from to the south row of a
// canonical board. Other players block only the cells next to the
// mover; beyond the first move they are assumed to have moved on. At
// the first move the mover may jump straight over an adjacent player
// onto a free cell behind it.
//
// The sideways jump allowed when a wall stands behind the jumped
// player is not modeled, so a path that needs one is reported as a
// detour or not at all.
//
// Ties between equally short paths go to the first step found in the
// order left, right, up, down, then jumps left, right, up, down.
func ShortestPath(b *board.Board, occupied []board.Pos, from board.Pos) Path {
	size := b.Size()
	if !from.In(size) {
		return noPath
	}
	if from.Y == size-1 {
		return Path{Step: from, Dist: 0}
	}
	s := newSearch(b, occupied)
	s.visited[s.idx(from)] = true

	for _, d := range board.Directions {
		if b.Blocked(from, d) {
			continue
		}
		n := from.Step(d)
		if s.occ[s.idx(n)] {
			continue
		}
		s.push(n, n, 1)
	}
	for _, d := range board.Directions {
		if b.Blocked(from, d) {
			continue
		}
		over := from.Step(d)
		if !s.occ[s.idx(over)] || b.Blocked(over, d) {
			continue
		}
		land := over.Step(d)
		if s.occ[s.idx(land)] || s.visited[s.idx(land)] {
			continue
		}
		s.push(land, land, 1)
	}

	for len(s.queue) > 0 {
		p := s.queue[0]
		s.queue = s.queue[1:]
		i := s.idx(p)
		if p.Y == size-1 {
			return Path{Step: s.first[i], Dist: s.dist[i]}
		}
		for _, d := range board.Directions {
			if b.Blocked(p, d) {
				continue
			}
			n := p.Step(d)
			if s.visited[s.idx(n)] {
				continue
			}
			s.push(n, s.first[i], s.dist[i]+1)
		}
	}
	return noPath
}
