// Package httpapi exposes the latest arrival snapshot, a health endpoint and
// Prometheus metrics over HTTP.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/theoremus-urban-solutions/transit-arrivals/arrivals"
)

// SnapshotSource is the read side of the poll orchestrator.
type SnapshotSource interface {
	Latest() (arrivals.Snapshot, bool)
	LastUpdateSuccess() bool
}

type Server struct {
	srv *http.Server
	log *slog.Logger
}

// New wires the router. metricsHandler may be nil when metrics are disabled.
func New(port int, src SnapshotSource, metricsHandler http.Handler, log *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/api/health", handleHealth(src))
	r.Get("/api/arrivals", handleArrivals(src))
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	addr := fmt.Sprintf(":%d", port)
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
}

// Start serves in the background until Shutdown.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", "error", err)
		}
	}()
	s.log.Info("server listening", "addr", s.srv.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
