// chess-server exposes the engine over an HTTP JSON API with websocket updates.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	log := newLogger(*verbose)

	searchOpts := []search.Option{search.WithLogger(log)}
	if *workers > 0 {
		searchOpts = append(searchOpts, search.WithWorkers(*workers))
	}

	srv := &http.Server{
		Addr: *listenAddr,
		Handler: server.New(
			server.WithLogger(log),
			server.WithSearcher(search.New(searchOpts...)),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", *listenAddr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-server version %s

Serves the chess engine over an HTTP JSON API with websocket updates.

Usage: chess-server [options]

Endpoints:
  POST /games                   create a game, optionally from a FEN
  GET  /games/{id}              fetch the current game state
  GET  /games/{id}/moves        list legal moves (from= filters by square)
  POST /games/{id}/moves        apply a move in coordinate notation
  POST /games/{id}/engine-move  have the engine pick and play a move
  POST /games/{id}/undo         take back the last move
  GET  /ws                      websocket feed of game state updates

Options:
`, programVersion)
	flag.PrintDefaults()
}
