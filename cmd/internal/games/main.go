package games

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/logs"
)

type Command struct {
	db string
}

func (*Command) Name() string     { return "games" }
func (*Command) Synopsis() string { return "List logged games and decisions" }
func (*Command) Usage() string {
	return `games -db FILE [GAME-ID]

With no game ID, list every logged game. With one, list the engine's
decisions in that game.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database written by bot or selfplay")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" || flag.NArg() > 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Error().Err(err).Str("db", c.db).Msg("open log")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	if flag.NArg() == 0 {
		err = listGames(os.Stdout, repo)
	} else {
		err = listDecisions(os.Stdout, repo, flag.Arg(0))
	}
	if err != nil {
		log.Error().Err(err).Msg("games")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func listGames(out io.Writer, repo *logs.Repository) error {
	gs, err := repo.Games()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tsize\tbots\twinner\tticks\tscores\n")
	for _, g := range gs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\t%s\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04:05"), g.Size,
			g.Bots, g.Winner, g.Ticks, g.Scores)
	}
	return tw.Flush()
}

func listDecisions(out io.Writer, repo *logs.Repository, id string) error {
	ds, err := repo.Decisions(id)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "tick\tseat\tmove\treason\tus\n")
	for _, d := range ds {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\n", d.Tick, d.Seat, d.Move, d.Reason, d.Elapsed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	stats, err := repo.SeatStats(id)
	if err != nil {
		return err
	}
	for _, s := range stats {
		fmt.Fprintf(out, "seat %d: %d decisions, %d walls, mean %.0fus\n",
			s.Seat, s.Decisions, s.Walls, s.MeanUS)
	}
	return nil
}
