// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Engine options
	searchDepth = flag.Int("depth", 4, "Default search depth for go commands that name none")
	workers     = flag.Int("workers", 0, "Parallel search workers (0 = one per CPU)")

	// Diagnostics
	verbose     = flag.Bool("verbose", false, "Enable debug logging on stderr")
	showVersion = flag.Bool("version", false, "Show version and exit")
)
