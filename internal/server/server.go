// Package server provides the HTTP API for the assistant.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/catalog"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/config"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// Answerer answers a question over the indexed documents.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Ingester is the slice of the pipeline the API exposes.
type Ingester interface {
	Reindex(ctx context.Context, prefix string, force bool) (*models.IndexReport, error)
	DeleteDocument(ctx context.Context, key string) *models.DeleteReport
	DeleteDocuments(ctx context.Context, keys []string) *models.BatchDeleteReport
}

// Server is the HTTP server for the assistant API.
type Server struct {
	answerer Answerer
	ingester Ingester
	store    docstore.Store
	catalog  *catalog.Catalog
	config   *config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies. catalog may be
// nil; the status endpoint then omits catalog counts.
func NewServer(
	answerer Answerer,
	ingester Ingester,
	store docstore.Store,
	cat *catalog.Catalog,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		answerer: answerer,
		ingester: ingester,
		store:    store,
		catalog:  cat,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/ask", s.handleAsk)
	r.Post("/api/v1/reindex", s.handleReindex)
	r.Get("/api/v1/documents", s.handleListDocuments)
	r.Post("/api/v1/documents", s.handleUploadDocument)
	r.Post("/api/v1/documents/delete", s.handleBatchDelete)
	r.Delete("/api/v1/documents/*", s.handleDeleteDocument)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
