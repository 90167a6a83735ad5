package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/cli"
	"github.com/quorbot/quorbot/cmd/internal/opt"
	"github.com/quorbot/quorbot/game"
)

type Command struct {
	players int
	size    int
	walls   int
	cutoff  int
	seats   string
	opt     opt.Engine
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play a match from the command line" }
func (*Command) Usage() string {
	return `play [options]

Play a match on the command-line, against humans or bots. Humans enter
"x y" to move and "x y v" to place a wall (v is 1 for vertical).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.players, "players", 2, "number of players (2 or 4)")
	flags.IntVar(&c.size, "size", 9, "board size")
	flags.IntVar(&c.walls, "walls", 0, "walls per player (0 for the default)")
	flags.IntVar(&c.cutoff, "cutoff", 0, "end the match after this many ticks (0 for the default)")
	flags.StringVar(&c.seats, "seats", "human,engine",
		"comma-separated players by seat: human, engine, random or random:SEED")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	names := strings.Split(c.seats, ",")
	var players []ai.Bot
	for _, name := range names {
		p, err := c.parsePlayer(in, strings.TrimSpace(name))
		if err != nil {
			log.Error().Err(err).Msg("-seats")
			return subcommands.ExitUsageError
		}
		players = append(players, p)
	}
	st := &cli.CLI{
		Config: game.Config{
			Size:    c.size,
			Players: c.players,
			Walls:   c.walls,
			Cutoff:  c.cutoff,
		},
		Out:     os.Stdout,
		Players: players,
		Rand:    rand.New(rand.NewSource(uint64(c.opt.Seed))),
	}
	if _, err := st.Play(ctx); err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) parsePlayer(in *bufio.Reader, name string) (ai.Bot, error) {
	if name == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	if bot, ok := c.opt.Builtin(name); ok {
		return bot, nil
	}
	return nil, fmt.Errorf("unknown player %q", name)
}
