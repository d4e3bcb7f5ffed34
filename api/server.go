package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"doctext/extract"
)

const serviceVersion = "1.0.0"

// Server exposes the extraction core over HTTP.
type Server struct {
	core            *extract.Core
	logger          *zap.Logger
	port            int
	minPayloadBytes int
}

// NewServer creates a new API server.
func NewServer(core *extract.Core, logger *zap.Logger, port, minPayloadBytes int) *Server {
	return &Server{
		core:            core,
		logger:          logger,
		port:            port,
		minPayloadBytes: minPayloadBytes,
	}
}

// Handler builds the route tree. Exposed separately from Start so tests
// can drive it without a listener.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(cors)

	r.Get("/health", s.handleHealth)
	r.Post("/extract", s.handleExtract)

	return r
}

// Start starts the API server.
func (s *Server) Start() error {
	s.logger.Info("starting api server", zap.Int("port", s.port))
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
