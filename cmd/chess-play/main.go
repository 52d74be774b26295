// chess-play is an interactive terminal game against the engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("chess-play version %s\n", programVersion)
		os.Exit(0)
	}

	if *searchDepth < search.MinDepth || *searchDepth > search.MaxDepth {
		fmt.Fprintf(os.Stderr, "Invalid depth %d: must be between %d and %d\n",
			*searchDepth, search.MinDepth, search.MaxDepth)
		os.Exit(1)
	}

	var human chess.Colour
	switch strings.ToLower(*playColour) {
	case "white":
		human = chess.White
	case "black":
		human = chess.Black
	default:
		fmt.Fprintf(os.Stderr, "Invalid colour %q: must be white or black\n", *playColour)
		os.Exit(1)
	}

	game := setupGame(*startFEN)
	log := newLogger(*verbose)

	opts := []search.Option{search.WithLogger(log)}
	if *workers > 0 {
		opts = append(opts, search.WithWorkers(*workers))
	}

	sess := &playSession{
		game:     game,
		searcher: search.New(opts...),
		human:    human,
		depth:    *searchDepth,
		log:      log,
	}

	fmt.Println("Type help for the list of commands.")
	if err := sess.run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupGame builds the game from the -fen flag, or the standard start.
func setupGame(fen string) *chess.Game {
	if fen == "" {
		return chess.NewGame()
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid FEN %q: %v\n", fen, err)
		os.Exit(1)
	}
	return chess.NewGameFromBoard(board)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-play [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the engine in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring the game:\n")
	fmt.Fprintf(os.Stderr, "  e2e4       play a move in coordinate notation (a7a8q to promote)\n")
	fmt.Fprintf(os.Stderr, "  moves      list the legal moves\n")
	fmt.Fprintf(os.Stderr, "  undo       take back your last move\n")
	fmt.Fprintf(os.Stderr, "  quit       leave the game\n")
}
