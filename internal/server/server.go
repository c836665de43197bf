package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/vitalbridge/internal/ingest/native"
	"github.com/meltforce/vitalbridge/internal/registry"
	"github.com/meltforce/vitalbridge/internal/storage"
	"github.com/meltforce/vitalbridge/internal/weather"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	native  *native.Provider
	reg     *registry.Registry
	weather *weather.Client
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, nativeProvider *native.Provider, reg *registry.Registry, wx *weather.Client, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		native:  nativeProvider,
		reg:     reg,
		weather: wx,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Ingest endpoints (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleIngest)
	})

	// Query API endpoints (no auth — tsnet handles access)
	s.router.Post("/api/v1/values/decode", s.handleDecodeValue)
	s.router.Get("/api/v1/samples", s.handleQuerySamples)
	s.router.Get("/api/v1/samples/latest", s.handleLatestSamples)
	s.router.Get("/api/v1/kinds", s.handleKinds)
	s.router.Get("/api/v1/weather", s.handleWeather)
}

// SetMCP mounts the MCP streamable-HTTP handler.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
