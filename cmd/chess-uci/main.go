// chess-uci speaks the Universal Chess Interface on standard input and
// output, backed by the engine's parallel search.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("chess-uci version %s\n", programVersion)
		os.Exit(0)
	}

	if *searchDepth < search.MinDepth || *searchDepth > search.MaxDepth {
		fmt.Fprintf(os.Stderr, "Invalid depth %d: must be between %d and %d\n",
			*searchDepth, search.MinDepth, search.MaxDepth)
		os.Exit(1)
	}

	log := newLogger(*verbose)

	opts := []search.Option{search.WithLogger(log)}
	if *workers > 0 {
		opts = append(opts, search.WithWorkers(*workers))
	}

	handler := newUCIHandler(search.New(opts...), *searchDepth, log)
	if err := handler.run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a stderr console logger. Stdout belongs to the
// protocol, so all diagnostics go to stderr.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-uci [options]\n\n")
	fmt.Fprintf(os.Stderr, "A UCI chess engine speaking the protocol on stdin/stdout.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSupported commands:\n")
	fmt.Fprintf(os.Stderr, "  uci, isready, ucinewgame, position, go, d, perft, quit\n")
}
