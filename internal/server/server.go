// Package server is the HTTP adapter: a thin JSON surface over the
// catalog, engine, puzzle generator, and practice log, plus the
// embedded explorer page.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/roach88/athena/internal/catalog"
	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/store"
	"github.com/roach88/athena/web"
)

// shutdownGrace bounds connection draining once the run context is
// cancelled.
const shutdownGrace = 10 * time.Second

// Server wires the domain packages behind the HTTP surface.
type Server struct {
	reg    *catalog.Registry
	eng    *engine.Engine
	store  *store.Store
	cache  *lru.Cache[string, convertResp]
	logger *slog.Logger
}

// New builds a server over the given catalog and practice log.
// cacheSize bounds the conversion response cache; values below 1 fall
// back to 1024.
func New(reg *catalog.Registry, st *store.Store, logger *slog.Logger, cacheSize int) (*Server, error) {
	if cacheSize < 1 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, convertResp](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create conversion cache: %w", err)
	}
	return &Server{
		reg:    reg,
		eng:    engine.New(reg),
		store:  st,
		cache:  cache,
		logger: logger,
	}, nil
}

// Handler returns the full route table wrapped in the logging and CORS
// middleware. The explorer page is served at /.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(web.StaticFS()))
	mux.HandleFunc("/api/systems", s.handleSystems)
	mux.HandleFunc("/api/convert", s.handleConvert)
	mux.HandleFunc("/api/puzzle/{system_id}", s.handlePuzzle)
	mux.HandleFunc("/api/attempt", s.handleAttempt)
	mux.HandleFunc("/api/history", s.handleHistory)
	return requestLogger(s.logger, allowCORS(mux))
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// connections before returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
