// Package api exposes the inventory and supplier views over HTTP.
package api

import (
	"net/http"

	"campconnect/internal/agents"
	"campconnect/internal/cache"
	"campconnect/internal/catalog"
	"campconnect/internal/config"
	"campconnect/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators of the API server
type Deps struct {
	Catalog     *catalog.Catalog
	Cache       cache.ViewCache
	Monitor     *monitoring.Monitor
	Agents      *agents.Registry
	Impact      config.ImpactConfig
	CORSOrigins []string
	Log         logrus.FieldLogger
}

// Server is the CampConnect HTTP API
type Server struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	cache   cache.ViewCache
	monitor *monitoring.Monitor
	agents  *agents.Registry
	impact  config.ImpactConfig
	log     logrus.FieldLogger
}

// NewServer creates the API server and registers its routes
func NewServer(deps Deps) *Server {
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	if deps.Monitor == nil {
		deps.Monitor = monitoring.NewMonitor()
	}

	s := &Server{
		router:  gin.New(),
		catalog: deps.Catalog,
		cache:   deps.Cache,
		monitor: deps.Monitor,
		agents:  deps.Agents,
		impact:  deps.Impact,
		log:     deps.Log.WithField("module", "api"),
	}

	s.router.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	if mw := corsMiddleware(deps.CORSOrigins); mw != nil {
		s.router.Use(mw)
	}
	s.setupRoutes()
	return s
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/inventory", s.handleInventory)
		v1.GET("/inventory/export", s.handleInventoryExport)
		v1.GET("/inventory/options", s.handleInventoryOptions)
		v1.GET("/inventory/:id", s.handleInventoryItem)

		v1.GET("/vendors", s.handleVendors)
		v1.GET("/vendors/options", s.handleVendorOptions)
		v1.GET("/vendors/:id", s.handleVendor)

		v1.GET("/agents", s.handleAgents)
		v1.GET("/agents/:id", s.handleAgent)
		v1.POST("/agents/:id/chat", s.handleAgentChat)
		v1.GET("/agents/:id/history", s.handleAgentHistory)
		v1.GET("/agents/:id/recall", s.handleAgentRecall)

		v1.GET("/impact", s.handleImpact)
		v1.GET("/metrics", s.handleMetrics)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	snap := s.catalog.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"message":        "CampConnect API is running",
		"catalogVersion": snap.Version,
		"loadedAt":       snap.LoadedAt,
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
