package board

func occupancy(size int, occupied []Pos) []bool {
	grid := make([]bool, size*size)
	for _, p := range occupied {
		if p.In(size) {
			grid[p.Y*size+p.X] = true
		}
	}
	return grid
}

// PawnMoves returns every cell a pawn at from may legally step to
// under the full rules, including jumps over adjacent pawns and the
// sideways jump taken when a wall stands behind the jumped pawn.
func (b *Board) PawnMoves(from Pos, occupied []Pos) []Pos {
	occ := occupancy(b.size, occupied)
	taken := func(p Pos) bool { return occ[p.Y*b.size+p.X] }

	var out []Pos
	for _, d := range [...]Direction{Up, Down, Left, Right} {
		if b.Blocked(from, d) {
			continue
		}
		next := from.Step(d)
		if !taken(next) {
			out = append(out, next)
			continue
		}
		if !b.Blocked(next, d) {
			if far := next.Step(d); !taken(far) {
				out = append(out, far)
			}
			continue
		}
		for _, side := range sideways(d) {
			if b.Blocked(next, side) {
				continue
			}
			if diag := next.Step(side); !taken(diag) {
				out = append(out, diag)
			}
		}
	}
	return out
}

func sideways(d Direction) [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

// GoalDistance is the length of the shortest walk from from to the
// given side, ignoring pawns, or Unreachable.
func (b *Board) GoalDistance(from Pos, goal Side) int {
	if !from.In(b.size) {
		return Unreachable
	}
	dist := make([]int, b.size*b.size)
	for i := range dist {
		dist[i] = -1
	}
	dist[from.Y*b.size+from.X] = 0
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := dist[p.Y*b.size+p.X]
		if goal.Reached(b.size, p) {
			return d
		}
		for _, dir := range Directions {
			if b.Blocked(p, dir) {
				continue
			}
			n := p.Step(dir)
			if dist[n.Y*b.size+n.X] >= 0 {
				continue
			}
			dist[n.Y*b.size+n.X] = d + 1
			queue = append(queue, n)
		}
	}
	return Unreachable
}
