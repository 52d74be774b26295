// Package search selects moves for the engine. It runs a fixed-depth
// minimax with alpha-beta pruning, parallelised across the root moves:
// each root move is scored in its own work item with a full window, so
// the chosen move is deterministic regardless of the worker count.
package search

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Search depth bounds accepted by BestMove.
const (
	MinDepth = 1
	MaxDepth = 7
)

const (
	// mateScore is the base score for checkmate. The remaining search
	// depth is added on top so that nearer mates score higher.
	mateScore = 100000

	// infinity bounds the alpha-beta window beyond any reachable score.
	infinity = 999999
)

// Searcher runs fixed-depth searches with a configurable worker count.
type Searcher struct {
	workers int
	log     zerolog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets how many root moves are scored in parallel.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = log
	}
}

// New creates a Searcher. By default it uses one worker per CPU and
// discards log output.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		workers: runtime.NumCPU(),
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BestMove searches with a default Searcher. See Searcher.BestMove.
func BestMove(board *chess.Board, depth int) (chess.Move, error) {
	return New().BestMove(board, depth)
}

// BestMove returns the strongest move for the side to move, searching
// depth plies ahead. Depth must be between MinDepth and MaxDepth.
//
// Ties between equally scored moves resolve to the move generated first,
// so the result depends only on the position and depth, never on worker
// scheduling.
func (s *Searcher) BestMove(board *chess.Board, depth int) (chess.Move, error) {
	if depth < MinDepth || depth > MaxDepth {
		return chess.Move{}, errors.Wrapf(errors.ErrOutOfRange,
			"search depth %d outside [%d, %d]", depth, MinDepth, MaxDepth)
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, errors.Wrap(errors.ErrNoLegalMoves, "cannot search position")
	}

	s.log.Debug().
		Int("depth", depth).
		Int("moves", len(moves)).
		Int("workers", s.workers).
		Msg("search started")

	pool := worker.NewPoolWithOptions(s.scoreRootMove,
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(moves)),
		worker.WithLogger(s.log),
	)
	pool.Start()

	for i, move := range moves {
		next, _ := engine.ApplyUnchecked(board, move)
		pool.Submit(worker.WorkItem{
			Board: next,
			Move:  move,
			Depth: depth - 1,
			Index: i,
		})
	}
	go pool.Close()

	scores := make([]int, len(moves))
	for result := range pool.Results() {
		scores[result.Index] = result.Score
		s.log.Debug().
			Str("move", result.Move.String()).
			Int("score", result.Score).
			Msg("root move scored")
	}

	// Reduce in generation order so that equal scores resolve to the
	// first generated move no matter how the workers interleaved.
	maximising := board.ToMove == chess.White
	best := 0
	for i := 1; i < len(moves); i++ {
		if maximising && scores[i] > scores[best] {
			best = i
		} else if !maximising && scores[i] < scores[best] {
			best = i
		}
	}

	s.log.Debug().
		Str("move", moves[best].String()).
		Int("score", scores[best]).
		Msg("search finished")

	return moves[best], nil
}

// scoreRootMove evaluates the position reached by a single root move.
// Every root move gets a full window so its score is exact.
func (s *Searcher) scoreRootMove(item worker.WorkItem) worker.ProcessResult {
	score := alphaBeta(item.Board, item.Depth, -infinity, infinity)
	return worker.ProcessResult{Move: item.Move, Index: item.Index, Score: score}
}

// alphaBeta returns the position's score from White's point of view.
// Pruning only discards lines that cannot affect the result, so the
// value is identical to a plain minimax of the same depth.
func alphaBeta(board *chess.Board, depth, alpha, beta int) int {
	if board.HalfmoveClock >= 100 {
		return 0
	}
	if engine.HasInsufficientMaterial(board) {
		return 0
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		if engine.IsInCheck(board, board.ToMove) {
			if board.ToMove == chess.White {
				return -(mateScore + depth)
			}
			return mateScore + depth
		}
		return 0
	}

	if depth <= 0 {
		return Evaluate(board)
	}

	if board.ToMove == chess.White {
		best := -infinity
		for _, move := range moves {
			next, _ := engine.ApplyUnchecked(board, move)
			score := alphaBeta(next, depth-1, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := infinity
	for _, move := range moves {
		next, _ := engine.ApplyUnchecked(board, move)
		score := alphaBeta(next, depth-1, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
