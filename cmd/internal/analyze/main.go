package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/ai"
	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/cli"
	"github.com/quorbot/quorbot/cmd/internal/opt"
	"github.com/quorbot/quorbot/notation"
	"github.com/quorbot/quorbot/symmetry"
)

type Command struct {
	quiet bool
	opt   opt.Engine
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Explain the engine's decision for a position" }
func (*Command) Usage() string {
	return `analyze [options] FILE

Read a match header and one or more ticks in protocol form from FILE
("-" for stdin) and explain the engine's decision for each tick.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	var in io.Reader = os.Stdin
	if flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Error().Err(err).Msg("open")
			return subcommands.ExitFailure
		}
		defer f.Close()
		in = f
	}
	if err := c.run(in, os.Stdout); err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) run(in io.Reader, out io.Writer) error {
	r := notation.NewReader(in)
	if _, err := r.ReadHeader(); err != nil {
		return err
	}
	engine := ai.NewEngine(c.opt.BuildConfig())
	for {
		s, err := r.ReadTick()
		if err == io.EOF || err == notation.ErrGameOver {
			return nil
		}
		if err != nil {
			return err
		}
		if !c.quiet {
			cli.RenderBoard(out, s.Board(), s.Players)
		}
		explain(out, s, engine.Analyze(s))
	}
}

func explain(out io.Writer, s *board.Snapshot, a ai.Analysis) {
	fmt.Fprintf(out, "tick %d seat %d: %s (%s)\n",
		s.Tick, s.Seat, notation.FormatMove(a.Move), a.Reason)
	if a.Path.Found() {
		fmt.Fprintf(out, "  path: %d moves\n", a.Path.Dist)
	} else {
		fmt.Fprintf(out, "  path: none\n")
	}
	if a.Threatened {
		// The threat is found in the mover's frame.
		rot := symmetry.Quarters(len(s.Players), s.Seat).Inverse()
		w := rot.Wall(s.Size, a.Threat.Wall)
		fmt.Fprintf(out, "  worst wall: %s -> %d moves\n",
			notation.FormatMove(board.Place(w)), a.Threat.Dist)
	}
	fmt.Fprintf(out, "  time: %s\n", a.Elapsed)
}
