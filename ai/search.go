package ai

import "github.com/quorbot/quorbot/board"

// Threat is an opponent wall and the mover's path length once it is
// placed.
type Threat struct {
	Wall board.Wall
	Dist int
}

// WorstWall tries every legal wall on b and returns the one that
// lengthens the mover's shortest path the most, if any lengthens it
// beyond baseline. Walls that cut the mover off entirely are illegal
// in play and are skipped.
//
// Each candidate is added to b, solved, and removed again before the
// next is tried; b is unchanged when WorstWall returns.
func WorstWall(b *board.Board, occupied []board.Pos, from board.Pos, baseline int) (Threat, bool) {
	worst := Threat{Dist: baseline}
	found := false
	for _, w := range b.LegalWalls() {
		b.AddWall(w)
		p := ShortestPath(b, occupied, from)
		b.RemoveWall(w)
		if p.Found() && p.Dist > worst.Dist {
			worst = Threat{Wall: w, Dist: p.Dist}
			found = true
		}
	}
	return worst, found
}
