package selfplay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/cmd/internal/opt"
	"github.com/quorbot/quorbot/cmd/internal/record"
	"github.com/quorbot/quorbot/game"
	"github.com/quorbot/quorbot/logs"
	"github.com/quorbot/quorbot/notation"
	"github.com/quorbot/quorbot/tei"
)

type Config struct {
	Games   int
	Threads int
	Seed    int64
	Verbose bool

	Game game.Config
	// Bots are filled into the seats in order, cycling when there are
	// fewer bots than seats.
	Bots []string
	// Rotate shifts the bots one seat further for each game.
	Rotate bool

	Engine  opt.Engine
	Timeout time.Duration
	Repo    *logs.Repository
}

type BotStats struct {
	Name     string
	Games    int
	Wins     int
	Score    float64
	Rejected int
}

type Stats struct {
	Bots       []BotStats
	Won        int
	Cutoff     int
	Eliminated int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Won + s.Cutoff
}

type gameSpec struct {
	i    int
	seed uint64
}

type Result struct {
	spec gameSpec

	ID     string
	Final  *game.State
	Seats  []int
	Moves  []board.Move
	Winner int
	Scores []float64

	Rejected   []int
	Eliminated int
}

// Simulate plays c.Games matches on c.Threads goroutines and tallies
// the results by bot.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	st := Stats{Bots: make([]BotStats, len(c.Bots))}
	for i, name := range c.Bots {
		st.Bots[i].Name = name
	}
	rc := make(chan Result)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(rc)
		return startGames(ctx, c, rc)
	})
	for r := range rc {
		if c.Verbose {
			log.Info().
				Int("game", r.spec.i).
				Int("ticks", r.Final.Tick()).
				Int("winner", r.Winner).
				Floats64("scores", r.Scores).
				Msg("game over")
		}
		if r.Winner >= 0 {
			st.Won++
		} else {
			st.Cutoff++
		}
		st.Eliminated += r.Eliminated
		for seat, bot := range r.Seats {
			b := &st.Bots[bot]
			b.Games++
			b.Score += r.Scores[seat]
			b.Rejected += r.Rejected[seat]
			if seat == r.Winner {
				b.Wins++
			}
		}
		st.Games = append(st.Games, r)
	}
	return st, grp.Wait()
}

func startGames(ctx context.Context, c *Config, rc chan<- Result) error {
	gc := make(chan gameSpec)
	grp, ctx := errgroup.WithContext(ctx)
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			return worker(ctx, c, gc, rc)
		})
	}
	grp.Go(func() error {
		defer close(gc)
		r := rand.New(rand.NewSource(uint64(c.Seed)))
		for g := 0; g < c.Games; g++ {
			select {
			case gc <- gameSpec{i: g, seed: r.Uint64()}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	return grp.Wait()
}

func worker(ctx context.Context, c *Config, games <-chan gameSpec, out chan<- Result) error {
	for g := range games {
		r, err := playGame(ctx, c, g)
		if err != nil {
			return fmt.Errorf("game %d: %w", g.i, err)
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

type seat struct {
	bot    ai.Bot
	client *tei.Client
	rec    *record.Recorder
}

// seatBot is the index into c.Bots of the bot playing seat i.
func (c *Config) seatBot(g gameSpec, i int) int {
	if c.Rotate {
		return (i + g.i) % len(c.Bots)
	}
	return i % len(c.Bots)
}

func (c *Config) newSeat(name string, s *game.State, i int) (*seat, error) {
	if name == "engine" && c.Repo != nil {
		rec := record.New(c.Engine.BuildConfig())
		return &seat{bot: rec, rec: rec}, nil
	}
	if bot, ok := c.Engine.Builtin(name); ok {
		return &seat{bot: bot}, nil
	}
	cl := tei.NewClient(strings.Fields(name))
	cl.Timeout = c.Timeout
	err := cl.NewGame(&notation.Header{
		Players: s.Config().Players,
		Seat:    i,
		Size:    s.Size(),
		Initial: s.Players(),
	})
	if err != nil {
		return nil, err
	}
	return &seat{bot: cl, client: cl}, nil
}

func playGame(ctx context.Context, c *Config, g gameSpec) (Result, error) {
	s, err := game.New(c.Game)
	if err != nil {
		return Result{}, err
	}
	n := s.Config().Players
	res := Result{
		spec:     g,
		ID:       logs.NewID(),
		Seats:    make([]int, n),
		Rejected: make([]int, n),
		Winner:   -1,
	}
	seats := make([]*seat, n)
	defer func() {
		for _, st := range seats {
			if st != nil && st.client != nil {
				st.client.Close()
			}
		}
	}()
	for i := range seats {
		res.Seats[i] = c.seatBot(g, i)
		if seats[i], err = c.newSeat(c.Bots[res.Seats[i]], s, i); err != nil {
			return res, err
		}
	}

	r := rand.New(rand.NewSource(g.seed))
	for !s.Over() {
		i := s.ToMove()
		if !s.CanMove() {
			log.Debug().Int("game", g.i).Int("seat", i).Msg("eliminated")
			s = s.Eliminate()
			res.Eliminated++
			continue
		}
		m := seats[i].bot.GetMove(ctx, s.Snapshot(i))
		next, err := s.Move(m)
		if err != nil {
			log.Debug().Err(err).
				Int("game", g.i).
				Int("seat", i).
				Str("move", notation.FormatMove(m)).
				Msg("rejected")
			res.Rejected[i]++
			m, _ = s.DefaultMove(r)
			if next, err = s.Move(m); err != nil {
				return res, fmt.Errorf("default move %s: %w", notation.FormatMove(m), err)
			}
		}
		s = next
		res.Moves = append(res.Moves, m)
	}

	res.Final = s
	res.Scores = s.Scores()
	if w, ok := s.Winner(); ok {
		res.Winner = w
	}
	if c.Repo != nil {
		if err := c.log(&res, seats); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (c *Config) log(r *Result, seats []*seat) error {
	names := make([]string, len(r.Seats))
	scores := make([]string, len(r.Scores))
	for i, b := range r.Seats {
		names[i] = c.Bots[b]
		scores[i] = fmt.Sprintf("%.3f", r.Scores[i])
	}
	err := c.Repo.InsertGame(&logs.Game{
		ID:      r.ID,
		Size:    r.Final.Size(),
		Players: len(r.Seats),
		Bots:    strings.Join(names, ","),
		Winner:  r.Winner,
		Ticks:   r.Final.Tick(),
		Scores:  strings.Join(scores, ","),
	})
	if err != nil {
		return err
	}
	for _, st := range seats {
		if st.rec != nil {
			if err := st.rec.Flush(c.Repo, r.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
