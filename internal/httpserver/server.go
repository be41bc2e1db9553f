package httpserver

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tinytelemetry/sidenav/internal/model"
	"github.com/tinytelemetry/sidenav/internal/sidenav"

	"github.com/gin-gonic/gin"
)

// Server mounts a side navigation widget on an HTML page. Requests are
// served concurrently, so every widget access goes through mu.
type Server struct {
	addr      string
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time

	mu  sync.Mutex
	nav *sidenav.SideNavigation
}

// NewServer creates a new HTTP host for nav.
func NewServer(addr string, nav *sidenav.SideNavigation) *Server {
	if addr == "" {
		addr = model.DefaultHTTPAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		nav:    nav,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleIndex)
	r.POST("/items/:id/select", s.handleSelect)
	r.GET("/api/state", s.handleState)
	r.GET("/api/health", s.handleHealth)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	log.Printf("httpserver: serving side navigation on http://%s", listener.Addr())

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.mu.Lock()
	page := Page(s.nav.Render())
	s.mu.Unlock()

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		log.Printf("httpserver: render index: %v", err)
	}
}

func (s *Server) handleSelect(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	changed, err := s.nav.SelectItem(id)
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, sidenav.ErrUnknownItem) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select item"})
		return
	}
	if changed {
		log.Printf("httpserver: active item -> %s", id)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleState(c *gin.Context) {
	s.mu.Lock()
	active := s.nav.Active()
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"active_item_id": active.ID,
		"active_label":   active.Label,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}
