// Package api exposes a small read-only HTTP surface over the daemon:
// the active priority record, the last focus transition, and a websocket
// stream of transitions. It reads published snapshots only and never
// touches the X connection.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/focusnice/focusnice/internal/config"
	"github.com/focusnice/focusnice/internal/focus"
	"github.com/focusnice/focusnice/internal/logger"
	"github.com/focusnice/focusnice/internal/priority"
)

// Server is the HTTP status server.
type Server struct {
	router   *mux.Router
	handler  *focus.Handler
	store    *priority.Store
	cfg      config.Config
	upgrader websocket.Upgrader
}

// NewServer creates a status server over the focus handler and store.
func NewServer(handler *focus.Handler, store *priority.Store, cfg config.Config) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		handler: handler,
		store:   store,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	api.HandleFunc("/events", s.handleEvents)
}

// Start starts the HTTP server. It blocks, so callers run it on its own
// goroutine.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	logger.WithComponent("api").Info().Str("addr", addr).Msg("status API listening")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type statusResponse struct {
	Priority config.Priority   `json:"priority"`
	Record   *priority.Record  `json:"record"`
	Last     *focus.Transition `json:"last_transition"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Priority: s.cfg.Priority}

	if rec, ok := s.store.Current(); ok {
		resp.Record = &rec
	}
	if last, ok := s.handler.Last(); ok {
		resp.Last = &last
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("api")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates := s.handler.Subscribe()
	defer s.handler.Unsubscribe(updates)

	// Send the last transition immediately so clients have state to show.
	if last, ok := s.handler.Last(); ok {
		if err := conn.WriteJSON(last); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}

	for t := range updates {
		if err := conn.WriteJSON(t); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}
}
