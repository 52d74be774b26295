package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DefaultSearchDepth is used for engine moves when the request does not
// name a depth.
const DefaultSearchDepth = 4

// GameState is the JSON representation of a session's current position.
type GameState struct {
	GameID          string           `json:"game_id"`
	FEN             string           `json:"fen"`
	Status          chess.GameStatus `json:"status"`
	ToMove          string           `json:"to_move"`
	PlyCount        int              `json:"ply_count"`
	LastMove        string           `json:"last_move,omitempty"`
	LegalMoves      []string         `json:"legal_moves"`
	CapturedByWhite []string         `json:"captured_by_white,omitempty"`
	CapturedByBlack []string         `json:"captured_by_black,omitempty"`
	Repetitions     uint             `json:"repetitions"`
}

type createGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type engineMoveRequest struct {
	Depth int `json:"depth,omitempty"`
}

type engineMoveResponse struct {
	Move  string    `json:"move"`
	State GameState `json:"state"`
}

type legalMovesResponse struct {
	Moves []string `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	// An empty body means a game from the standard starting position.
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var game *chess.Game
	if req.FEN == "" {
		game = chess.NewGame()
	} else {
		board, err := engine.NewBoardFromFEN(req.FEN)
		if err != nil {
			s.writeGameError(w, err)
			return
		}
		game = chess.NewGameFromBoard(board)
	}

	id, err := newSessionID()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to allocate game id")
		return
	}

	sess := &session{id: id, game: game}
	s.addSession(sess)
	s.log.Info().Str("game", id).Msg("game created")

	sess.mu.Lock()
	state := s.stateFor(sess)
	sess.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	sess.mu.Lock()
	state := s.stateFor(sess)
	sess.mu.Unlock()
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	from := r.URL.Query().Get("from")

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var moves []chess.Move
	if from == "" {
		moves = engine.LegalMoves(sess.game.Board)
	} else {
		if len(from) != 2 {
			s.writeError(w, http.StatusBadRequest, "from must name a square such as e2")
			return
		}
		var err error
		moves, err = engine.LegalMovesFrom(sess.game.Board, chess.Col(from[0]), chess.Rank(from[1]))
		if err != nil {
			s.writeGameError(w, err)
			return
		}
	}

	s.writeJSON(w, http.StatusOK, legalMovesResponse{Moves: moveStrings(moves)})
}

func (s *Server) handleApplyMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	move, err := chess.ParseMove(req.Move)
	if err != nil {
		s.writeGameError(w, err)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	played, err := engine.PlayMove(sess.game, move)
	if err != nil {
		s.writeGameError(w, err)
		return
	}

	state := s.stateFor(sess)
	s.log.Info().Str("game", sess.id).Str("move", played.String()).Msg("move played")
	s.writeJSON(w, http.StatusOK, state)
	s.broadcast(state)
}

func (s *Server) handleEngineMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	// Depth zero or an empty body selects the default depth.
	var req engineMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Depth == 0 {
		req.Depth = DefaultSearchDepth
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	move, err := s.searcher.BestMove(sess.game.Board, req.Depth)
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	if _, err := engine.PlayMove(sess.game, move); err != nil {
		s.writeGameError(w, err)
		return
	}

	state := s.stateFor(sess)
	s.log.Info().Str("game", sess.id).Str("move", move.String()).Int("depth", req.Depth).Msg("engine move played")
	s.writeJSON(w, http.StatusOK, engineMoveResponse{Move: move.String(), State: state})
	s.broadcast(state)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	move, ok := sess.game.Undo()
	if !ok {
		s.writeError(w, http.StatusConflict, "no moves to undo")
		return
	}

	state := s.stateFor(sess)
	s.log.Info().Str("game", sess.id).Str("move", move.String()).Msg("move taken back")
	s.writeJSON(w, http.StatusOK, state)
	s.broadcast(state)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, "not found")
}

// stateFor builds the JSON state for a session. The caller holds the
// session lock.
func (s *Server) stateFor(sess *session) GameState {
	board := sess.game.Board
	state := GameState{
		GameID:          sess.id,
		FEN:             engine.BoardToFEN(board),
		Status:          engine.Classify(board),
		ToMove:          board.ToMove.String(),
		PlyCount:        sess.game.PlyCount(),
		LegalMoves:      moveStrings(engine.LegalMoves(board)),
		CapturedByWhite: pieceLabels(sess.game.CapturedByWhite),
		CapturedByBlack: pieceLabels(sess.game.CapturedByBlack),
		Repetitions:     sess.game.Repetitions(),
	}
	if last, ok := sess.game.LastMove(); ok {
		state.LastMove = last.String()
	}
	return state
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// writeGameError maps engine errors onto HTTP statuses.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrInvalidFEN), errors.Is(err, errors.ErrOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrInvalidMove):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrNoLegalMoves):
		status = http.StatusConflict
	}
	s.writeError(w, status, err.Error())
}

func moveStrings(moves []chess.Move) []string {
	strs := make([]string, 0, len(moves))
	for _, move := range moves {
		strs = append(strs, move.String())
	}
	return strs
}

// pieceLabels renders captured pieces as FEN letters, lowercase for black.
func pieceLabels(pieces []chess.Piece) []string {
	labels := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		labels = append(labels, string(engine.ColouredPieceToSANLetter(piece)))
	}
	return labels
}
