package bridge

// The bridge exposes the command channel over HTTP, so anything that can
// POST JSON can drive VMD without speaking its wire syntax. One bridge owns
// one stream; handlers run concurrently so every forward is serialised
// through a mutex.

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	reuseport "github.com/kavu/go_reuseport"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Server struct {
	addr   string
	stream Sender

	mu sync.Mutex

	srv      *http.Server
	listener net.Listener

	log *zap.Logger
}

func New(options Options) *Server {
	s := &Server{
		addr:   net.JoinHostPort(options.Host, options.Port),
		stream: options.Stream,
		log:    options.Log,
	}

	router := setupRouter(options.DebugHTTP, options.Log)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.POST("/draw", s.handleDraw)
	router.POST("/command", s.handleCommand)
	router.POST("/clear", s.handleClear)

	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: router,
	}

	return s
}

// Start begins serving. It returns once the listener is accepting, the
// serve loop runs in the background until Close.
func (s *Server) Start(ctx context.Context) error {
	listener, err := reuseport.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.listener = listener

	s.log.Info("Bridge listening", zap.String("addr", s.addr))

	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Bridge server errored", zap.Error(err))
		}
	}()

	return nil
}

// Addr returns the bound listener address. Useful when the configured port
// was 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}

	return s.listener.Addr().String()
}

// Close drains in-flight requests, then releases the listener.
func (s *Server) Close() (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.srv.SetKeepAlivesEnabled(false)

	if serr := s.srv.Shutdown(ctx); serr != nil {
		err = multierr.Append(err, serr)

		if cerr := s.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = multierr.Append(err, cerr)
		}
	}

	return err
}

func setupRouter(debugHTTP bool, log *zap.Logger) *gin.Engine {
	gin.DisableConsoleColor()
	if !debugHTTP {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Combined access and error log to stdout, RFC3339 with UTC time format.
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))

	// Logs all panics to the error log, with stacks.
	r.Use(ginzap.RecoveryWithZap(log, true))

	return r
}
