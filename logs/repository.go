// Package logs stores finished games and per-turn engine decisions in
// a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

type Game struct {
	ID        string    `db:"id"`
	Timestamp time.Time `db:"time"`
	Size      int       `db:"size"`
	Players   int       `db:"players"`
	// Bots names the bot in each seat, comma separated.
	Bots string `db:"bots"`
	// Winner is -1 for a game cut off without one.
	Winner int    `db:"winner"`
	Ticks  int    `db:"ticks"`
	Scores string `db:"scores"`
}

type Decision struct {
	GameID  string `db:"game_id"`
	Tick    int    `db:"tick"`
	Seat    int    `db:"seat"`
	Move    string `db:"move"`
	Reason  string `db:"reason"`
	Elapsed int64  `db:"elapsed_us"`
}

type SeatStats struct {
	GameID    string  `db:"game_id"`
	Seat      int     `db:"seat"`
	Decisions int     `db:"decisions"`
	Walls     int     `db:"walls"`
	MeanUS    float64 `db:"mean_us"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)
	for _, stmt := range []struct{ name, sql string }{
		{"games", createGameTable},
		{"decisions", createDecisionTable},
		{"seat_decisions", createSeatView},
	} {
		if _, err := db.Exec(stmt.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s: %w", stmt.name, err)
		}
	}
	return &Repository{db: db}, nil
}

// NewID returns a fresh game ID.
func NewID() string {
	return uuid.NewString()
}

// InsertGame records g, assigning it an ID if it has none.
func (r *Repository) InsertGame(g *Game) error {
	if g.ID == "" {
		g.ID = NewID()
	}
	if g.Timestamp.IsZero() {
		g.Timestamp = time.Now().UTC()
	}
	_, err := r.db.NamedExec(insertGame, g)
	return err
}

// InsertDecisions records ds in a single transaction.
func (r *Repository) InsertDecisions(ds []Decision) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for i := range ds {
		if _, err := txn.NamedExec(insertDecision, &ds[i]); err != nil {
			return fmt.Errorf("decision %d: %w", i, err)
		}
	}
	return txn.Commit()
}

func (r *Repository) Games() ([]Game, error) {
	var out []Game
	err := r.db.Select(&out, selectGames)
	return out, err
}

func (r *Repository) Decisions(gameID string) ([]Decision, error) {
	var out []Decision
	err := r.db.Select(&out, selectDecisions, gameID)
	return out, err
}

func (r *Repository) SeatStats(gameID string) ([]SeatStats, error) {
	var out []SeatStats
	err := r.db.Select(&out,
		`SELECT * FROM seat_decisions WHERE game_id = ? ORDER BY seat`, gameID)
	return out, err
}

func (r *Repository) Close() error {
	return r.db.Close()
}
