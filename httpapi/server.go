// Package httpapi serves the scoreboard and live round status over HTTP
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/status"
)

const (
	handlerTimeout    = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// ScoreReader is the read side of the scoreboard
type ScoreReader interface {
	HighScore(ctx context.Context) int
	History(ctx context.Context) []int
}

// Server bundles the router with its read-only dependencies
type Server struct {
	r       *chi.Mux
	scores  ScoreReader
	metrics *status.Registry
	log     zerolog.Logger

	mu   sync.Mutex
	http *http.Server
}

type scoresRes struct {
	HighScore int   `json:"highScore"`
	History   []int `json:"history"`
}

// New constructs a Server, installs middleware and registers routes
func New(scores ScoreReader, metrics *status.Registry, logger zerolog.Logger) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		scores:  scores,
		metrics: metrics,
		log:     logger.With().Str("component", "httpapi").Logger(),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(handlerTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLog)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/scores", s.handleScores)
	s.r.Get("/status", s.handleStatus)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "method_not_allowed"})
	})

	return s
}

// Router exposes the router for tests
func (s *Server) Router() chi.Router { return s.r }

// Start serves on addr until Shutdown; ErrServerClosed is not an error
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.log.Info().Str("addr", addr).Msg("scoreboard API listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a started server, waiting for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	history := s.scores.History(r.Context())
	if history == nil {
		history = []int{}
	}
	_ = json.NewEncoder(w).Encode(scoresRes{
		HighScore: s.scores.HighScore(r.Context()),
		History:   history,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.metrics.Snapshot())
}

// jsonContentType sets a default JSON Content-Type header on all responses
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLog records one debug line per request with status and latency
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
