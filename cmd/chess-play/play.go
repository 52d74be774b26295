// play.go - The interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// playSession holds one game between the human and the engine.
type playSession struct {
	game     *chess.Game
	searcher *search.Searcher
	human    chess.Colour
	depth    int
	log      zerolog.Logger
	out      io.Writer
}

// run drives the game until it ends or the human quits.
func (p *playSession) run(in io.Reader, out io.Writer) error {
	p.out = out
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(p.out, "\n%s\n", p.game.Board)
		if len(p.game.CapturedByWhite) > 0 {
			fmt.Fprintf(p.out, "White has taken: %s\n", capturedLetters(p.game.CapturedByWhite))
		}
		if len(p.game.CapturedByBlack) > 0 {
			fmt.Fprintf(p.out, "Black has taken: %s\n", capturedLetters(p.game.CapturedByBlack))
		}

		status := engine.Classify(p.game.Board)
		if status.IsTerminal() {
			p.printResult(status)
			return nil
		}
		if status == chess.Check {
			fmt.Fprintln(p.out, "Check!")
		}
		if reps := p.game.Repetitions(); reps >= 3 {
			fmt.Fprintln(p.out, "Threefold repetition reached; either side may claim a draw.")
		}

		if p.game.Board.ToMove == p.human {
			if !p.humanTurn(scanner) {
				return scanner.Err()
			}
		} else {
			if err := p.engineTurn(); err != nil {
				return err
			}
		}
	}
}

// humanTurn reads input until a move is played or the session ends.
// It returns false when the human quits or input runs out.
func (p *playSession) humanTurn(scanner *bufio.Scanner) bool {
	for {
		fmt.Fprintf(p.out, "%s to move> ", p.game.Board.ToMove)
		if !scanner.Scan() {
			return false
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			return false
		case "help":
			p.printHelp()
		case "moves":
			var texts []string
			for _, move := range engine.LegalMoves(p.game.Board) {
				texts = append(texts, move.String())
			}
			fmt.Fprintln(p.out, strings.Join(texts, " "))
		case "undo":
			p.undo()
			return true
		default:
			move, err := chess.ParseMove(line)
			if err != nil {
				fmt.Fprintf(p.out, "Cannot read %q. Moves look like e2e4 or a7a8q; try help.\n", line)
				continue
			}
			if _, err := engine.PlayMove(p.game, move); err != nil {
				fmt.Fprintf(p.out, "Illegal move %s.\n", move)
				continue
			}
			return true
		}
	}
}

// engineTurn searches the position and plays the chosen move.
func (p *playSession) engineTurn() error {
	start := time.Now()
	move, err := p.searcher.BestMove(p.game.Board, p.depth)
	if err != nil {
		return err
	}
	if _, err := engine.PlayMove(p.game, move); err != nil {
		return err
	}
	p.log.Debug().Str("move", move.String()).Dur("elapsed", time.Since(start)).Msg("engine moved")
	fmt.Fprintf(p.out, "Engine plays %s.\n", move)
	return nil
}

// undo takes back a full move pair so the human is on turn again.
func (p *playSession) undo() {
	if _, ok := p.game.Undo(); !ok {
		fmt.Fprintln(p.out, "Nothing to undo.")
		return
	}
	if p.game.Board.ToMove != p.human {
		p.game.Undo()
	}
}

func (p *playSession) printResult(status chess.GameStatus) {
	switch status {
	case chess.Checkmate:
		fmt.Fprintf(p.out, "Checkmate! %s wins.\n", p.game.Board.ToMove.Opposite())
	case chess.Stalemate:
		fmt.Fprintln(p.out, "Stalemate. Draw.")
	case chess.DrawFiftyMove:
		fmt.Fprintln(p.out, "Draw by the fifty-move rule.")
	case chess.DrawInsufficientMaterial:
		fmt.Fprintln(p.out, "Draw by insufficient material.")
	}
}

// capturedLetters renders captured pieces as FEN letters, lowercase for
// black.
func capturedLetters(pieces []chess.Piece) string {
	letters := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		letters = append(letters, string(engine.ColouredPieceToSANLetter(piece)))
	}
	return strings.Join(letters, " ")
}

func (p *playSession) printHelp() {
	fmt.Fprintln(p.out, "Commands:")
	fmt.Fprintln(p.out, "  e2e4       play a move in coordinate notation (a7a8q to promote)")
	fmt.Fprintln(p.out, "  moves      list the legal moves")
	fmt.Fprintln(p.out, "  undo       take back your last move")
	fmt.Fprintln(p.out, "  quit       leave the game")
}
