// SPDX-License-Identifier: MIT
package server

import (
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/thatcatcamp/twtheme/internal/metrics"
	"github.com/thatcatcamp/twtheme/internal/middleware"
	"github.com/thatcatcamp/twtheme/internal/plugin"
)

const cssContentType = "text/css; charset=utf-8"

// UpdateMessage is broadcast to live reload clients after a reload.
type UpdateMessage struct {
	Type string `json:"type"`
}

// Server serves generated theme artifacts to a bundler dev session.
type Server struct {
	mu      sync.RWMutex
	plugin  *plugin.Plugin
	hub     *Hub
	allowed []string
	origin  string

	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedCIDRs restricts clients to the given networks.
func WithAllowedCIDRs(cidrs []string) Option {
	return func(s *Server) { s.allowed = cidrs }
}

// WithAllowOrigin sets the CORS origin sent with every response.
func WithAllowOrigin(origin string) Option {
	return func(s *Server) { s.origin = origin }
}

// New creates a server around p.
func New(p *plugin.Plugin, opts ...Option) *Server {
	s := &Server{
		plugin: p,
		hub:    NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Plugin returns the current plugin.
func (s *Server) Plugin() *plugin.Plugin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plugin
}

// Reload swaps in a plugin built from fresh options and notifies clients.
func (s *Server) Reload(p *plugin.Plugin) {
	s.mu.Lock()
	s.plugin = p
	s.mu.Unlock()
	s.Notify()
}

// Notify tells live reload clients the theme changed.
func (s *Server) Notify() {
	s.hub.Broadcast(UpdateMessage{Type: "theme-update"})
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.AllowlistMiddleware(s.allowed))
	r.Use(middleware.DevHeadersMiddleware(s.origin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "twtheme",
			"clients": s.hub.Len(),
		})
	})

	r.GET("/theme.css", s.handleThemeCSS)
	r.GET("/theme.plain.css", s.handlePlainCSS)
	r.GET("/intellisense.css", s.handleIntelliSenseCSS)
	r.GET("/@id/*id", s.handleVirtualModule)
	r.POST("/transform", s.handleTransform)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/ws", s.handleWebSocket)

	return r
}

func (s *Server) handleThemeCSS(c *gin.Context) {
	c.Data(200, cssContentType, []byte(s.Plugin().ThemeCSS()))
}

func (s *Server) handlePlainCSS(c *gin.Context) {
	c.Data(200, cssContentType, []byte(s.Plugin().PlainCSS()))
}

func (s *Server) handleIntelliSenseCSS(c *gin.Context) {
	c.Data(200, cssContentType, []byte(s.Plugin().IntelliSenseCSS()))
}

func (s *Server) handleVirtualModule(c *gin.Context) {
	id := strings.TrimPrefix(c.Param("id"), "/")
	p := s.Plugin()

	resolved, ok := p.ResolveID(id)
	if !ok {
		c.JSON(404, gin.H{"error": "unknown module"})
		return
	}
	src, ok := p.Load(resolved)
	if !ok {
		c.JSON(404, gin.H{"error": "unknown module"})
		return
	}
	c.Data(200, "application/javascript; charset=utf-8", []byte(src))
}

// handleTransform takes the stylesheet as the body and its module id as ?id=.
func (s *Server) handleTransform(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(400, gin.H{"error": "id is required"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}

	out, ok := s.Plugin().Transform(string(body), id)
	if !ok {
		c.Header("X-Twtheme-Transformed", "false")
		c.Data(200, cssContentType, body)
		return
	}
	c.Header("X-Twtheme-Transformed", "true")
	c.Data(200, cssContentType, []byte(out))
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	s.hub.Add(conn)
	defer func() {
		s.hub.Remove(conn)
		conn.Close()
	}()

	// drain until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
