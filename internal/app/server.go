package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Server runs the HTTP listener and drains it gracefully on shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer wraps handler in an http.Server on the given port. Read and
// write timeouts are tight because the hot path is tablet search polling;
// a stalled client must not pin a connection through an event-door rush.
// The idle timeout stays generous so tablets reuse connections between
// keystrokes.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    90 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		shutdownTimeout: 15 * time.Second,
	}
}

// Run serves until SIGINT/SIGTERM or a listener error. On a signal the
// server drains in-flight requests first, so a check-in submitted during a
// deploy still lands instead of forcing the tablet into a retry.
func (s *Server) Run() error {
	listenErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Check-in service listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received, draining connections")
	}

	return s.Shutdown()
}

// Shutdown stops accepting new requests and waits up to the shutdown
// timeout for in-flight ones to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown deadline exceeded, connections dropped")
		return err
	}

	log.Info().Msg("Check-in service stopped")
	return nil
}
