package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/cmd/internal/opt"
	"github.com/quorbot/quorbot/game"
	"github.com/quorbot/quorbot/logs"
)

type Command struct {
	size    int
	players int
	walls   int
	cutoff  int
	bots    string
	rotate  bool

	games   int
	threads int
	timeout time.Duration

	db      string
	summary string
	verbose bool

	opt opt.Engine
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play bots against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Bots are named "engine", "random", "random:SEED", or given as a command
line that runs an external bot speaking the match protocol.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 9, "board size")
	flags.IntVar(&c.players, "players", 2, "number of players (2 or 4)")
	flags.IntVar(&c.walls, "walls", 0, "walls per player (0 for the default)")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after this many ticks (0 for the default)")
	flags.StringVar(&c.bots, "bots", "engine,random", "comma-separated bots, assigned to seats in order")
	flags.BoolVar(&c.rotate, "rotate", true, "rotate bots through the seats each game")

	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.DurationVar(&c.timeout, "timeout", 0, "time limit per reply from external bots")

	flags.StringVar(&c.db, "db", "", "log games and engine decisions to this sqlite database")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.opt.Seed == 0 {
		c.opt.Seed = time.Now().Unix()
	}
	cfg := &Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.opt.Seed,
		Verbose: c.verbose,
		Game: game.Config{
			Size:    c.size,
			Players: c.players,
			Walls:   c.walls,
			Cutoff:  c.cutoff,
		},
		Rotate:  c.rotate,
		Engine:  c.opt,
		Timeout: c.timeout,
	}
	for _, b := range strings.Split(c.bots, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.Bots = append(cfg.Bots, b)
		}
	}
	if len(cfg.Bots) == 0 {
		log.Error().Msg("-bots: no bots given")
		return subcommands.ExitUsageError
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("open log")
			return subcommands.ExitFailure
		}
		defer repo.Close()
		cfg.Repo = repo
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.opt.Seed).
		Int("won", st.Won).
		Int("cutoff", st.Cutoff).
		Int("eliminated", st.Eliminated).
		Msg("done")
	printStats(os.Stderr, &st)
	return subcommands.ExitSuccess
}

func printStats(out io.Writer, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "bot\tgames\twins\tscore\trejected\n")
	for _, b := range st.Bots {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%d\n", b.Name, b.Games, b.Wins, b.Score, b.Rejected)
	}
	tw.Flush()
}

type Summary struct {
	Cmdline []string
	Bots    []string
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Bots:    strings.Split(c.bots, ","),
		Stats:   stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
