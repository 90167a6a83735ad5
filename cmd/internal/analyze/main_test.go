package analyze

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const position = `2 0 9
0 1 10
4 8 10
5
0 1 10
4 8 10
4
1 1 1 1
1 3 1 1
1 5 1 1
1 7 1 1
-1
`

func TestRun(t *testing.T) {
	c := &Command{quiet: true}
	c.opt.Threshold = 3
	var out bytes.Buffer
	require.NoError(t, c.run(strings.NewReader(position), &out))
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "tick 5 seat 0: 0 2 1 (counter)", lines[0])
	assert.Equal(t, "  path: 7 moves", lines[1])
	assert.Equal(t, "  worst wall: 0 2 0 -> 12 moves", lines[2])
}

// The same position turned a half turn and played by seat 1: both the
// command and the threat are reported in the match's coordinates.
const rotated = `2 1 9
4 0 10
8 7 10
5
4 0 10
8 7 10
4
6 6 1 0
6 4 1 0
6 2 1 0
6 0 1 0
-1
`

func TestRunRotated(t *testing.T) {
	c := &Command{quiet: true}
	c.opt.Threshold = 3
	var out bytes.Buffer
	require.NoError(t, c.run(strings.NewReader(rotated), &out))
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "tick 5 seat 1: 7 5 1 (counter)", lines[0])
	assert.Equal(t, "  path: 7 moves", lines[1])
	assert.Equal(t, "  worst wall: 7 5 0 -> 12 moves", lines[2])
}

func TestRunBoard(t *testing.T) {
	c := &Command{}
	var out bytes.Buffer
	require.NoError(t, c.run(strings.NewReader(position), &out))
	assert.Contains(t, out.String(), "walls: 0:10 1:10")
}
