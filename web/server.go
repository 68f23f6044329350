package web

import (
	"travelrec/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server.
// searcher handles every search the page, the partial and the API run.
func NewServer(cfg *models.Config, searcher *models.Searcher) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.LogLevel == "debug",
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // CORS for the search API
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	setupRoutes(s, searcher)

	// Serve static files and the bundled dataset from the embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *models.Config) error {
	logger.Info("Travel recommendation server starting on", "address", cfg.Address)
	return s.Run()
}
