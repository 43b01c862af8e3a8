package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clubportal/internal/config"
	"clubportal/internal/httpmiddleware"
)

// Server serves the stub endpoints.
type Server struct {
	cfg   config.App
	state *State
}

// NewServer creates a stub server over the given state.
func NewServer(cfg config.App, state *State) *Server {
	return &Server{cfg: cfg, state: state}
}

// Router builds the gin engine with the full endpoint surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(httpmiddleware.RequestID())
	r.Use(httpmiddleware.NewTokenBucket(s.cfg.RateLimitPerMin, s.cfg.RateLimitPerMin).Middleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth", s.handleAuth)

	r.GET("/news", s.handleListNews)
	r.POST("/news", s.handleCreateNews)

	r.GET("/applications", s.handleListApplications)
	r.POST("/applications", s.handleSubmitApplication)
	r.PUT("/applications", s.handleDecideApplication)

	r.GET("/attendance", s.handleListAttendance)
	r.POST("/attendance", s.handleToggleAttendance)

	r.GET("/members", s.handleMembersGet)
	r.POST("/members", s.handleMembersPost)
	r.PUT("/members", s.handleChangeRole)
	r.DELETE("/members", s.handleRemoveMember)

	return r
}

// CORS middleware for browser requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-User-Role, X-User-Id")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
