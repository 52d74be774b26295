package main

import "flag"

var (
	// Server options
	listenAddr = flag.String("addr", ":8080", "address to listen on for HTTP and websocket traffic")

	// Engine options
	workers = flag.Int("workers", 0, "number of search workers (0 = one per CPU)")

	// Diagnostics
	verbose     = flag.Bool("verbose", false, "enable debug logging")
	showVersion = flag.Bool("version", false, "print version and exit")
)
