package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quorbot/quorbot/board"
)

var ErrBadMove = errors.New("bad move")

// ParseMove reads a command: "x y" steps the pawn to x, y; "x y v"
// places a wall anchored at x, y, vertical when v is 1.
func ParseMove(s string) (board.Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 && len(fields) != 3 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return board.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
		}
		nums[i] = n
	}
	if len(fields) == 2 {
		return board.StepTo(board.Pos{X: nums[0], Y: nums[1]}), nil
	}
	if nums[2] != 0 && nums[2] != 1 {
		return board.Move{}, fmt.Errorf("%w: orientation %d", ErrBadMove, nums[2])
	}
	return board.Place(board.Wall{X: nums[0], Y: nums[1], Vertical: nums[2] == 1}), nil
}

func FormatMove(m board.Move) string {
	if !m.IsWall() {
		return fmt.Sprintf("%d %d", m.X, m.Y)
	}
	return fmt.Sprintf("%d %d %d", m.X, m.Y, flag(m.Vertical))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
