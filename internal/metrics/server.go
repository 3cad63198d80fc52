package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scrape requests are tiny; keep the HTTP timeouts short so a stuck scraper
// cannot outlive the run by much.
const (
	scrapeReadTimeout  = 2 * time.Second
	scrapeWriteTimeout = 5 * time.Second
	scrapeIdleTimeout  = 20 * time.Second
)

// Server exposes the run's metrics over HTTP for the lifetime of a single
// supervised process: the text exposition on /metrics and a liveness check
// on /healthz.
type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// NewServer creates a metrics server bound to addr. Call Start to begin
// serving and Shutdown to stop.
func NewServer(addr string, logger *slog.Logger) *Server {
	s := &Server{logger: logger}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  scrapeReadTimeout,
		WriteTimeout: scrapeWriteTimeout,
		IdleTimeout:  scrapeIdleTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

// Start binds the listener and begins serving in the background, returning
// the bound address. Binding failures surface here; later serve errors are
// logged.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return "", fmt.Errorf("metrics listen on %s: %w", s.srv.Addr, err)
	}

	s.logger.Info("metrics_server_listening", "addr", ln.Addr().String())

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics_server_error", "error", err)
		}
	}()

	return ln.Addr().String(), nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Debug("metrics_server_shutting_down")
	return s.srv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
