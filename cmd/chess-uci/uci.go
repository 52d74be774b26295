// uci.go - The UCI command loop and its handlers
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// uciHandler owns the game state behind one UCI session.
type uciHandler struct {
	game     *chess.Game
	searcher *search.Searcher
	depth    int
	log      zerolog.Logger
	out      io.Writer
}

func newUCIHandler(searcher *search.Searcher, depth int, log zerolog.Logger) *uciHandler {
	return &uciHandler{
		game:     chess.NewGame(),
		searcher: searcher,
		depth:    depth,
		log:      log,
	}
}

// run reads commands until quit or end of input.
func (u *uciHandler) run(in io.Reader, out io.Writer) error {
	u.out = out

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.game = chess.NewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "d":
			fmt.Fprintln(u.out, u.game.Board)
		case "perft":
			u.handlePerft(args)
		case "quit":
			return nil
		default:
			u.log.Debug().Str("command", cmd).Msg("ignoring unsupported command")
		}
	}
	return scanner.Err()
}

func (u *uciHandler) handleUCI() {
	fmt.Fprintf(u.out, "id name chess-engine-go %s\n", programVersion)
	fmt.Fprintln(u.out, "id author lgbarn")
	fmt.Fprintln(u.out, "uciok")
}

// handlePosition sets up a position. Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *uciHandler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var board *chess.Board
	moveStart := len(args)

	switch args[0] {
	case "startpos":
		board = engine.NewInitialBoard()
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	case "fen":
		fenEnd := len(args)
		for i, arg := range args {
			if arg == "moves" {
				fenEnd = i
				moveStart = i + 1
				break
			}
		}
		parsed, err := engine.NewBoardFromFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid fen: %v\n", err)
			return
		}
		board = parsed
	default:
		return
	}

	game := chess.NewGameFromBoard(board)
	for _, text := range args[moveStart:] {
		move, err := chess.ParseMove(text)
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid move %s\n", text)
			return
		}
		if _, err := engine.PlayMove(game, move); err != nil {
			fmt.Fprintf(u.out, "info string illegal move %s\n", text)
			return
		}
	}
	u.game = game
}

// handleGo searches the current position and prints the best move.
// Only "go depth N" is honoured; other go arguments are ignored.
func (u *uciHandler) handleGo(args []string) {
	depth := u.depth
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "depth" {
			if n, err := strconv.Atoi(args[i+1]); err == nil {
				depth = n
			}
		}
	}
	if depth > search.MaxDepth {
		depth = search.MaxDepth
	}
	if depth < search.MinDepth {
		depth = search.MinDepth
	}

	start := time.Now()
	move, err := u.searcher.BestMove(u.game.Board, depth)
	if err != nil {
		// Mated and stalemated positions have no move to offer.
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}
	u.log.Debug().Str("move", move.String()).Dur("elapsed", time.Since(start)).Msg("search complete")
	fmt.Fprintf(u.out, "bestmove %s\n", move)
}

func (u *uciHandler) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			depth = n
		}
	}

	start := time.Now()
	var total uint64
	for _, entry := range engine.PerftDivide(u.game.Board, depth) {
		fmt.Fprintf(u.out, "%s: %d\n", entry.Move, entry.Nodes)
		total += entry.Nodes
	}
	elapsed := time.Since(start)

	fmt.Fprintf(u.out, "Nodes: %d\n", total)
	fmt.Fprintf(u.out, "Time: %v\n", elapsed)
}
