package bot

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/cmd/internal/opt"
	"github.com/quorbot/quorbot/cmd/internal/record"
	"github.com/quorbot/quorbot/logs"
	"github.com/quorbot/quorbot/tei"
)

type Command struct {
	opt      opt.Engine
	db       string
	moveTime time.Duration
}

func (*Command) Name() string     { return "bot" }
func (*Command) Synopsis() string { return "Play one match over stdin/stdout" }
func (*Command) Usage() string {
	return `bot [options]

Play one match as a bot: read the match header and one tick at a time
from stdin, and answer each tick with a command on stdout.
`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
	fs.StringVar(&c.db, "db", "", "log every decision to this sqlite database")
	fs.DurationVar(&c.moveTime, "move-time", 0, "time limit per move")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec := record.New(c.opt.BuildConfig())
	engine := tei.NewEngine(os.Stdin, os.Stdout, rec)
	engine.MoveTime = c.moveTime

	g := logs.Game{Winner: -1, Bots: "engine"}
	engine.Observe = func(s *board.Snapshot, _ board.Move, _ time.Duration) {
		g.Size, g.Players, g.Ticks = s.Size, len(s.Players), s.Tick
	}
	if err := engine.Run(ctx); err != nil {
		log.Error().Err(err).Msg("bot")
		return subcommands.ExitFailure
	}
	if c.db == "" {
		return subcommands.ExitSuccess
	}

	repo, err := logs.Open(c.db)
	if err != nil {
		log.Error().Err(err).Str("db", c.db).Msg("open log")
		return subcommands.ExitFailure
	}
	defer repo.Close()
	if err := repo.InsertGame(&g); err != nil {
		log.Error().Err(err).Msg("log game")
		return subcommands.ExitFailure
	}
	if err := rec.Flush(repo, g.ID); err != nil {
		log.Error().Err(err).Msg("log decisions")
		return subcommands.ExitFailure
	}
	log.Info().Str("game", g.ID).Int("ticks", g.Ticks).Msg("logged")
	return subcommands.ExitSuccess
}
