package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/cmd/internal/analyze"
	"github.com/quorbot/quorbot/cmd/internal/bot"
	"github.com/quorbot/quorbot/cmd/internal/games"
	"github.com/quorbot/quorbot/cmd/internal/play"
	"github.com/quorbot/quorbot/cmd/internal/selfplay"
)

var logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&bot.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&games.Command{}, "")

	flag.Parse()

	// stdout carries protocol output; logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("-log-level")
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
