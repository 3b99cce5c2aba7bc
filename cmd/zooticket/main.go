// Package main is the zoo ticketing command.
//
// Usage:
//
//	zooticket [-file tickets.json] [-v]              # interactive session
//	zooticket [-file tickets.json] list              # table of all tickets
//	zooticket [-file tickets.json] verify <ticket-id>
//
// The ticket file defaults to $ZOOTICKET_FILE, then tickets.json.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/alternate/ticket"
	"github.com/rs/zerolog"
)

const defaultFile = "tickets.json"

func main() {
	file := flag.String("file", envOr("ZOOTICKET_FILE", defaultFile), "path of the JSON ticket file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, log, ticket.NewStore(*file), flag.Args())
	if errors.Is(err, context.Canceled) {
		log.Debug().Msg("interrupted")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("file", *file).Msg("zooticket")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log zerolog.Logger, store *ticket.Store, args []string) error {
	if len(args) == 0 {
		return ticket.NewSession(os.Stdin, os.Stdout, store, ticket.WithLogger(log)).Run(ctx)
	}

	switch args[0] {
	case "list":
		return ticket.List(os.Stdout, store)
	case "verify":
		if len(args) != 2 {
			return errors.New("usage: zooticket verify <ticket-id>")
		}
		return ticket.Verify(os.Stdout, store, args[1])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
