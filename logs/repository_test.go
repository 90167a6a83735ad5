package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer repo.Close()

	g := &Game{
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Size:      9,
		Players:   2,
		Bots:      "engine,random",
		Winner:    0,
		Ticks:     17,
		Scores:    "1,0",
	}
	require.NoError(t, repo.InsertGame(g))
	assert.NotEmpty(t, g.ID)

	ds := []Decision{
		{GameID: g.ID, Tick: 1, Seat: 0, Move: "4 1", Reason: "step", Elapsed: 120},
		{GameID: g.ID, Tick: 3, Seat: 0, Move: "4 2 0", Reason: "guard", Elapsed: 300},
		{GameID: g.ID, Tick: 5, Seat: 0, Move: "4 2", Reason: "step", Elapsed: 90},
		{GameID: g.ID, Tick: 7, Seat: 0, Move: "0 0 1", Reason: "stuck", Elapsed: 110},
	}
	require.NoError(t, repo.InsertDecisions(ds))

	games, err := repo.Games()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, g.ID, games[0].ID)
	assert.True(t, g.Timestamp.Equal(games[0].Timestamp))
	assert.Equal(t, "engine,random", games[0].Bots)
	assert.Equal(t, 17, games[0].Ticks)

	got, err := repo.Decisions(g.ID)
	require.NoError(t, err)
	assert.Equal(t, ds, got)

	none, err := repo.Decisions(NewID())
	require.NoError(t, err)
	assert.Empty(t, none)

	stats, err := repo.SeatStats(g.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 4, stats[0].Decisions)
	assert.Equal(t, 2, stats[0].Walls, "guard and stuck both placed walls")
	assert.InDelta(t, 155, stats[0].MeanUS, 1e-9)
}

func TestInsertGameKeepsID(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer repo.Close()

	g := &Game{ID: "fixed", Size: 5, Players: 4, Winner: -1}
	require.NoError(t, repo.InsertGame(g))
	assert.Equal(t, "fixed", g.ID)
	assert.False(t, g.Timestamp.IsZero())

	assert.Error(t, repo.InsertGame(&Game{ID: "fixed"}))
}
