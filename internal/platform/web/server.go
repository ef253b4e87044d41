// Package web serves the arcade to browsers: a JSON API over the game
// registry and scores, plus one WebSocket per running game.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database.
	DBPath string

	// TickRate is the simulation rate of every WebSocket session.
	TickRate int

	// WatchConfigs reloads game configs when their YAML files change.
	WatchConfigs bool
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		DBPath:   storage.DefaultPath,
		TickRate: 60,
	}
}

// Server is the HTTP and WebSocket front end.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	configs  *config.Store
	logger   *log.Logger
	router   *gin.Engine
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer opens the scores database and builds the router. A database that
// cannot be opened only disables score features.
func NewServer(cfg ServerConfig, configs *config.Store) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-web",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	return newServer(cfg, store, configs, logger), nil
}

func newServer(cfg ServerConfig, store *storage.Store, configs *config.Store, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := &Server{
		config:  cfg,
		store:   store,
		configs: config.StoreOrActive(configs),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// routes registers the API, the WebSocket endpoint and the index page.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.loggingMiddleware)

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	api.GET("/games", s.handleListGames)
	api.GET("/games/:id", s.handleGetGame)
	api.GET("/scores/:id", s.handleScores)

	r.GET("/ws/:id", s.handlePlay)
	return r
}

// loggingMiddleware logs every request with its status and latency.
func (s *Server) loggingMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.config.WatchConfigs {
		go func() {
			if err := s.configs.Watch(ctx, s.logger); err != nil {
				s.logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	s.http = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes the scores database.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
