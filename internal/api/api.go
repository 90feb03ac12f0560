// Package api implements the HTTP API for the lead analysis service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/logger"
)

// Analyzer runs site analyses and lead scoring for API handlers.
type Analyzer interface {
	// AnalyzeURLs fetches and scores every URL, one lead per input.
	AnalyzeURLs(ctx context.Context, urls []string) []domain.Lead

	// ScoreLeads scores search-result metadata without fetching.
	ScoreLeads(metas []domain.LeadMetadata) []domain.Lead
}

// AuditCapture records incoming free-audit requests.
type AuditCapture interface {
	Append(ctx context.Context, req domain.AuditRequest) error
}

// analyzeRequest is the body of POST /api/v1/analyze.
type analyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

// scoreRequest is the body of POST /api/v1/leads/score.
type scoreRequest struct {
	Leads []domain.LeadMetadata `json:"leads" binding:"required"`
}

// auditRequest is the body of POST /api/v1/audit.
type auditRequest struct {
	Business string `json:"business"`
	Website  string `json:"website"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Industry string `json:"industry"`
}

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(log logger.Interface, analyzer Analyzer, audits AuditCapture) *gin.Engine {
	// Disable Gin's default logging
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/analyze", func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		leads := analyzer.AnalyzeURLs(c.Request.Context(), []string{req.URL})
		c.JSON(http.StatusOK, leads[0])
	})

	v1.POST("/leads/score", func(c *gin.Context) {
		var req scoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "leads list is required"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"leads": analyzer.ScoreLeads(req.Leads)})
	})

	v1.POST("/audit", func(c *gin.Context) {
		var req auditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		capture := domain.AuditRequest{
			Timestamp: time.Now(),
			Business:  req.Business,
			Website:   req.Website,
			Email:     req.Email,
			Phone:     req.Phone,
			Industry:  req.Industry,
			Status:    domain.AuditStatusNew,
		}
		if err := audits.Append(c.Request.Context(), capture); err != nil {
			log.Error("failed to capture audit request", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save request"})

			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// loggingMiddleware logs each request after it completes.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
