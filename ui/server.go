// Package ui exposes the analysis service over HTTP: a JSON API on gin
// plus rendered methodology pages, with a separate chi ops router for
// health probes.
package ui

import (
	"github.com/gin-gonic/gin"

	"drawlab/adapters/excel"
	"drawlab/app"
	"drawlab/internal"
)

// Server is the public HTTP surface.
type Server struct {
	router   *gin.Engine
	service  *app.AnalysisService
	exporter *excel.Exporter
	logger   *internal.Logger
}

// NewServer creates a server around the analysis service.
func NewServer(service *app.AnalysisService, ginMode string) *Server {
	gin.SetMode(ginMode)
	s := &Server{
		router:   gin.New(),
		service:  service,
		exporter: excel.NewExporter(),
		logger:   internal.DefaultLogger,
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api/v1")
	api.GET("/draws", s.handleListDraws)
	api.GET("/analysis/frequency", s.handleFrequency)
	api.GET("/analysis/randomness", s.handleRandomness)
	api.GET("/analysis/patterns", s.handlePatterns)
	api.GET("/analysis/correlation", s.handleCorrelation)
	api.GET("/analysis/montecarlo", s.handleMonteCarlo)
	api.GET("/export/excel", s.handleExportExcel)

	s.router.GET("/methodology/:slug", s.handleMethodology)
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run starts the server on addr and blocks.
func (s *Server) Run(addr string) error {
	s.logger.Info("api listening on %s", addr)
	return s.router.Run(addr)
}
