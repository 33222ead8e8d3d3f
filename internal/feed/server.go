package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs the feed endpoint as a worker.
type Server struct {
	server *http.Server
	logger *logger.Logger

	listening chan struct{}
	addr      net.Addr
}

func NewServer(handler *Handler, cfg config.ClientFeed, logger *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:    logger,
		listening: make(chan struct{}),
	}
}

// Listening is closed once the listener is bound; Addr is valid after that.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Addr is the bound address, useful when the configured port is 0.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Run serves until ctx is cancelled, then shuts down gracefully. Handlers
// still waiting for a decision after shutdownTimeout are cut off, so the
// caller should abandon pending requests before cancelling ctx.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("feed server: %w", err)
	}
	s.addr = ln.Addr()
	close(s.listening)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr.String()).Msg("launching feed HTTP server")
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("feed server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Str("func", "*Server.Run").Msg("feed server shutdown timed out")
		return s.server.Close()
	}

	s.logger.Info().Msg("feed server shutdown gracefully")
	return nil
}
