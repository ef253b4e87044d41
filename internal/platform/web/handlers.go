package web

import (
	_ "embed"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

//go:embed static/index.html
var indexHTML []byte

// gameInfo describes a game for the portal page.
type gameInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Controls string `json:"controls,omitempty"`
	Presets  bool   `json:"presets"`
	Puzzle   bool   `json:"puzzle"`
}

func describe(info registry.GameInfo) gameInfo {
	gi := gameInfo{
		ID:      info.ID,
		Title:   info.Title,
		Presets: config.HasPresets(info.ID),
	}
	if g, err := registry.Create(info.ID); err == nil {
		if c, ok := g.(registry.Controller); ok {
			gi.Controls = c.Controls()
		}
		_, gi.Puzzle = g.(storage.Solver)
	}
	return gi
}

// notFound answers unknown game ids with the placeholder body the portal
// shows instead of a game.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "game not found", "placeholder": true})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleListGames(c *gin.Context) {
	games := registry.List()
	out := make([]gameInfo, 0, len(games))
	for _, info := range games {
		out = append(out, describe(info))
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

func (s *Server) handleGetGame(c *gin.Context) {
	info, ok := registry.Lookup(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, describe(info))
}

func (s *Server) handleScores(c *gin.Context) {
	info, ok := registry.Lookup(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scores unavailable"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	if describe(info).Puzzle {
		results, err := s.store.BestPuzzleResults(info.ID, limit)
		if err != nil {
			s.logger.Error("load puzzle results", "game", info.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load results"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": info.ID, "results": results})
		return
	}

	scores, err := s.store.TopScores(info.ID, limit)
	if err != nil {
		s.logger.Error("load scores", "game", info.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": info.ID, "scores": scores})
}

// handlePlay upgrades to a WebSocket and runs one game until the client
// leaves. An optional ?difficulty= picks a preset for games that have them.
func (s *Server) handlePlay(c *gin.Context) {
	id := c.Param("id")
	if !registry.Exists(id) {
		notFound(c)
		return
	}

	configs := s.configs
	if name := c.Query("difficulty"); name != "" && config.HasPresets(id) {
		preset, ok := config.ParsePreset(name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
			return
		}
		scoped, err := configs.WithPreset(preset)
		if err != nil {
			s.logger.Error("apply preset", "game", id, "preset", name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load config"})
			return
		}
		configs = scoped
	}

	game, err := registry.CreateWithStore(id, configs)
	if err != nil {
		notFound(c)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "game", id, "error", err)
		return
	}

	start := time.Now()
	sess := newSession(game, conn, s.store, s.logger, s.config.TickRate)
	s.logger.Info("session started", "game", id, "remote", c.Request.RemoteAddr)
	sess.run(c.Request.Context())
	s.logger.Info("session ended", "game", id, "remote", c.Request.RemoteAddr, "duration", time.Since(start).Round(time.Second))
}
