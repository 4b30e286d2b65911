package api

import (
	"errors"
	"net/http"

	"campconnect/internal/agents"
	"campconnect/internal/catalog"
	"campconnect/internal/export"
	"campconnect/internal/impact"
	"campconnect/internal/models"
	"campconnect/internal/view"

	"github.com/gin-gonic/gin"
)

// VendorDetail is a vendor with its derived scores
type VendorDetail struct {
	models.Vendor
	CompositeScore float64          `json:"compositeScore"`
	Tier           models.ScoreTier `json:"tier"`
	AveragePrice   *float64         `json:"averagePrice"`
}

// ChatRequest is the body of an agent chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (s *Server) handleInventory(c *gin.Context) {
	var f view.InventoryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.inventoryView(c.Request.Context(), f, c.Query("sort")))
}

func (s *Server) handleInventoryExport(c *gin.Context) {
	var f view.InventoryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := s.inventoryView(c.Request.Context(), f, c.Query("sort"))

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
	c.Status(http.StatusOK)
	if err := export.InventoryXLSX(v.Items, c.Writer); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (s *Server) handleInventoryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, view.NewInventoryOptions())
}

func (s *Server) handleInventoryItem(c *gin.Context) {
	item, err := s.catalog.Item(c.Param("id"))
	if err != nil {
		s.notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleVendors(c *gin.Context) {
	var f view.VendorFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the suppliers page opens sorted by agent score
	sortKey := c.DefaultQuery("sort", view.SortAgentScore)
	c.JSON(http.StatusOK, s.vendorView(c.Request.Context(), f, sortKey))
}

func (s *Server) handleVendorOptions(c *gin.Context) {
	c.JSON(http.StatusOK, view.NewVendorOptions())
}

func (s *Server) handleVendor(c *gin.Context) {
	v, err := s.catalog.Vendor(c.Param("id"))
	if err != nil {
		s.notFound(c, err)
		return
	}

	detail := VendorDetail{
		Vendor:         v,
		CompositeScore: v.CompositeScore(),
		Tier:           v.Tier(),
	}
	if avg, ok := v.AveragePrice(); ok {
		detail.AveragePrice = &avg
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) handleAgents(c *gin.Context) {
	roster := s.agents.Roster()
	c.JSON(http.StatusOK, gin.H{
		"agents":  roster,
		"summary": agents.Summarize(roster),
	})
}

func (s *Server) handleAgent(c *gin.Context) {
	agent, err := s.agents.Get(c.Param("id"))
	if err != nil {
		s.notFound(c, err)
		return
	}
	greeting, err := s.agents.Greeting(agent.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent, "greeting": greeting})
}

func (s *Server) handleAgentChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := s.agents.Chat(c.Request.Context(), c.Param("id"), req.Message)
	switch {
	case errors.Is(err, agents.ErrUnknownAgent):
		s.notFound(c, err)
	case errors.Is(err, agents.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "agent failed to reply"})
	default:
		c.JSON(http.StatusOK, reply)
	}
}

// HistoryQuery bounds the events returned by the history endpoint
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// RecallQuery selects significant events similar to Q
type RecallQuery struct {
	Q string `form:"q" binding:"required,max=200"`
	K int    `form:"k" binding:"omitempty,min=1,max=20"`
}

func (s *Server) handleAgentHistory(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	events, err := s.agents.History(c.Param("id"), q.Limit)
	if err != nil {
		s.notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) handleAgentRecall(c *gin.Context) {
	q := RecallQuery{K: 5}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	events, err := s.agents.Recall(c.Param("id"), q.Q, q.K)
	if err != nil {
		s.notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) handleImpact(c *gin.Context) {
	c.JSON(http.StatusOK, impact.Build(s.catalog.Vendors(), s.impact))
}

func (s *Server) notFound(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, agents.ErrUnknownAgent) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
