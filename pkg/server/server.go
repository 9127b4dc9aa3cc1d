package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/textmenu/pkg/logger"
	"github.com/mchmarny/textmenu/pkg/metric"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultShutdownTimeout is the maximum duration to wait for active
	// connections to close during shutdown.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes limits the size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)

// Server is an HTTP side server exposing metrics, health and the menu tree
// while a menu application runs in the foreground.
type Server interface {
	// Serve starts the HTTP server and blocks until the context is canceled.
	// Returns nil on graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning returns true once the socket is bound and until the server stops.
	IsRunning() bool

	// Addr returns the bound address while running, empty otherwise.
	Addr() string
}

type server struct {
	mux             *http.ServeMux
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	errLog          *log.Logger

	mu      sync.RWMutex
	running bool
	bound   string
}

// Option is a functional option for configuring the Server.
type Option func(*server)

// WithPort listens on all interfaces at port. DefaultPort is used if not specified.
func WithPort(port int) Option {
	return func(s *server) { s.addr = fmt.Sprintf(":%d", port) }
}

// WithAddress sets the full listen address, e.g. "127.0.0.1:0".
func WithAddress(addr string) Option {
	return func(s *server) { s.addr = addr }
}

// WithShutdownTimeout sets the maximum duration to wait for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithHandler registers a custom HTTP handler for the specified pattern.
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.mux.Handle(pattern, handler)
	}
}

// WithSimpleHealth adds a /healthz endpoint that always returns 200 "ok".
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// WithMetrics serves the metrics gathered by reg at /metrics.
func WithMetrics(reg prometheus.Gatherer) Option {
	return WithHandler("/metrics", metric.GetHandlerForRegistry(reg))
}

// New creates a new HTTP server with the provided options.
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(9876),
//	    server.WithMetrics(reg),
//	    server.WithHandler("/menu", root.Handler()),
//	)
func New(opts ...Option) Server {
	s := &server{
		addr:            fmt.Sprintf(":%d", DefaultPort),
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
		errLog:          logger.NewLogLogger(slog.LevelError),
	}

	for _, opt := range opts {
		opt(s)
	}

	slog.Debug("server initialized",
		"addr", s.addr,
		"read_timeout", s.readTimeout,
		"write_timeout", s.writeTimeout)

	return s
}

func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

func (s *server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bound
}

func (s *server) setRunning(running bool, addr string) {
	s.mu.Lock()
	s.running = running
	s.bound = addr
	s.mu.Unlock()
}

// Serve runs the server goroutine and a shutdown goroutine waiting for ctx
// in an errgroup. http.ErrServerClosed is not treated as an error.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           s.addr,
		Handler:        s.mux,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	// running is set only after the socket is bound
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	slog.Info("starting server", "addr", listener.Addr().String())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true, listener.Addr().String())
		defer s.setRunning(false, "")

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Debug("shutting down server", "grace_period", s.shutdownTimeout)

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		return nil
	})

	return g.Wait()
}
