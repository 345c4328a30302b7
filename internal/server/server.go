// Package server provides the HTTP REST API for the screening agent.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/session"
)

// Server exposes screening sessions over HTTP.
type Server struct {
	httpServer *http.Server
	sessions   *session.Manager
	store      *db.Store // nil when persistence is not configured
	jwtService *JWTService
	log        *zap.Logger
}

// Config holds server wiring.
type Config struct {
	Port       int
	Sessions   *session.Manager
	Store      *db.Store
	JWTService *JWTService
	Logger     *zap.Logger
}

// New creates a server instance and registers routes.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &Server{
		sessions:   cfg.Sessions,
		store:      cfg.Store,
		jwtService: cfg.JWTService,
		log:        cfg.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("POST /sessions/{id}/messages", s.handleMessage)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("GET /sessions/{id}/transcript", s.handleGetTranscript)
	mux.HandleFunc("GET /interviews/{id}", s.withAuth(s.handleGetInterview))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // question generation is network-bound
	}
	return s
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully. Expired sessions are swept in the background.
func (s *Server) Start() error {
	stopSweep := make(chan struct{})
	go s.sweepLoop(stopSweep)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		close(stopSweep)
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}
	close(stopSweep)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// sweepLoop periodically evicts expired sessions.
func (s *Server) sweepLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sessions.Sweep()
		case <-stop:
			return
		}
	}
}

// withLogging logs each request with latency.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("latency", time.Since(start)))
	})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
