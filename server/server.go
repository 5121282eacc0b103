package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"kucukaslan/hello/api"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

var (
	// ErrNotListening is returned by Serve when Listen has not bound a listener yet
	ErrNotListening = errors.New("server is not listening")
	// ErrAlreadyListening is returned by a second call to Listen
	ErrAlreadyListening = errors.New("server is already listening")
)

const (
	closeTimeout = 5 * time.Second
	// Headers up to 16KB are accepted.
	readBufferSize = 16 << 10
)

// State is the listener state of a Server.
type State int

const (
	NotListening State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case NotListening:
		return "not_listening"
	case Listening:
		return "listening"
	default:
		return fmt.Sprintf("invalid State: %d", s)
	}
}

type Config struct {
	Port string
	// Stdout receives the single listening line. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger receives diagnostics. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Server answers every request on its port with the fixed greeting.
type Server struct {
	port   string
	stdout io.Writer
	log    *zerolog.Logger
	app    *fiber.App

	mu    sync.Mutex
	state State
	ln    net.Listener
}

func New(cfg Config) *Server {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	// Bodies past BodyLimit are streamed to the handler instead of rejected.
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		StreamRequestBody:     true,
		ReadBufferSize:        readBufferSize,
	})

	app.Use(recover.New())

	// Use without a path matches every method and every path.
	app.Use(api.NewHelloHandler().Hello)

	return &Server{
		port:   cfg.Port,
		stdout: stdout,
		log:    log,
		app:    app,
	}
}

// Listen binds the TCP listener on all interfaces. On success the server moves
// to Listening and writes "server is listening at <port>" to stdout. A bind
// failure leaves the server NotListening.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Listening {
		return ErrAlreadyListening
	}

	ln, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", s.port, err)
	}

	s.ln = ln
	s.state = Listening
	fmt.Fprintln(s.stdout, "server is listening at", s.port)
	s.log.Debug().Str("addr", ln.Addr().String()).Msg("listener bound")

	return nil
}

// Serve accepts connections on the bound listener. It blocks until the
// listener is closed.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	if ln == nil {
		return ErrNotListening
	}
	return s.app.Listener(ln)
}

// Run binds the listener and serves on it.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address, or nil before Listen succeeds.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Close stops serving and releases the listener. The process normally runs
// until killed; Close exists for embedding and tests.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	if ln == nil {
		return nil
	}

	if err := s.app.ShutdownWithTimeout(closeTimeout); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	// Serve may not have handed the listener to fiber yet.
	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	return nil
}
