// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Game options
	startFEN   = flag.String("fen", "", "Starting position in FEN (default: the standard start)")
	playColour = flag.String("colour", "white", "Side for the human player: white or black")

	// Engine options
	searchDepth = flag.Int("depth", 4, "Engine search depth")
	workers     = flag.Int("workers", 0, "Parallel search workers (0 = one per CPU)")

	// Diagnostics
	verbose     = flag.Bool("verbose", false, "Enable debug logging on stderr")
	showVersion = flag.Bool("version", false, "Show version and exit")
)
