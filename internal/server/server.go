// Package server exposes games over HTTP. It keeps a registry of live
// game sessions, serves a JSON API for making moves and requesting
// engine replies, and pushes state updates to websocket subscribers.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// session is one live game. Its mutex serialises all access to the game.
type session struct {
	mu   sync.Mutex
	id   string
	game *chess.Game
}

// wsClient wraps a websocket connection with a write lock. Gorilla
// connections support one concurrent writer only.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) send(messageType int, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, payload)
}

// Server hosts game sessions behind a JSON API with websocket updates.
type Server struct {
	router   *mux.Router
	searcher *search.Searcher
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*session

	clientsMu sync.RWMutex
	clients   map[*wsClient]struct{}
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and game logging.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithSearcher sets the searcher used for engine replies.
func WithSearcher(searcher *search.Searcher) Option {
	return func(s *Server) {
		s.searcher = searcher
	}
}

// New creates a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		searcher: search.New(),
		log:      zerolog.Nop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[string]*session),
		clients:  make(map[*wsClient]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter()
	s.router.Use(s.requestLogger)
	s.router.NotFoundHandler = s.requestLogger(http.HandlerFunc(s.handleNotFound))

	s.router.HandleFunc("/games", s.handleCreateGame).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}", s.handleGetGame).Methods(http.MethodGet)
	s.router.HandleFunc("/games/{id}/moves", s.handleLegalMoves).Methods(http.MethodGet)
	s.router.HandleFunc("/games/{id}/moves", s.handleApplyMove).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}/engine-move", s.handleEngineMove).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}/undo", s.handleUndo).Methods(http.MethodPost)
	s.router.HandleFunc("/ws", s.handleWebsocket)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger writes Apache-style access lines through the server's
// logger. zerolog.Logger is an io.Writer, so each line becomes one entry.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(s.log, next)
}

func (s *Server) addSession(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Server) lookupSession(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// newSessionID returns a random 16-character hex identifier.
func newSessionID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// handleWebsocket upgrades the connection and registers it for state
// broadcasts. Subscribers only listen; inbound messages are drained so
// the connection's control frames keep working.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("websocket client connected")

	client := &wsClient{conn: conn}
	s.clientsMu.Lock()
	s.clients[client] = struct{}{}
	s.clientsMu.Unlock()

	// The welcome doubles as a registration acknowledgement: once a
	// subscriber has read it, every later state change will reach it.
	if err := client.send(websocket.TextMessage, []byte("welcome")); err != nil {
		s.log.Debug().Err(err).Msg("websocket welcome failed")
	}

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.clientsMu.Lock()
				delete(s.clients, client)
				s.clientsMu.Unlock()
				conn.Close()
				s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("websocket client disconnected")
				return
			}
		}
	}()
}

// broadcast sends the game state to every websocket subscriber.
func (s *Server) broadcast(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode broadcast")
		return
	}

	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for client := range s.clients {
		if err := client.send(websocket.TextMessage, payload); err != nil {
			s.log.Debug().Err(err).Msg("websocket write failed")
		}
	}
}
