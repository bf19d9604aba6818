// Package web serves the roster over HTTP: a JSON API for NPCs, status and
// audit reports, catalogue browsing, and Fantasy Grounds export downloads,
// plus the health and metrics endpoints.
//
// The server is read-mostly — editors work through the CLI — but record
// creation and editing are exposed so campaign tools can write too.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/diceforge/npcdb/internal/config"
	"github.com/diceforge/npcdb/internal/health"
	"github.com/diceforge/npcdb/internal/npc"
	"github.com/diceforge/npcdb/internal/observe"
	"github.com/diceforge/npcdb/internal/rules"
)

// shutdownTimeout bounds graceful shutdown once the signal context is done.
const shutdownTimeout = 10 * time.Second

// Server owns the HTTP surface over a roster store.
type Server struct {
	addr       string
	tlsCfg     *config.TLSConfig
	moduleName string

	store    npc.Store
	catalog  rules.Catalog
	resolver *npc.Resolver
	metrics  *observe.Metrics
	health   *health.Handler
}

// Option is a functional option for [New]. Use these to inject test doubles.
type Option func(*Server)

// WithMetrics injects a metrics instance instead of the package default.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithCheckers sets the readiness checkers for /readyz.
func WithCheckers(checkers ...health.Checker) Option {
	return func(s *Server) { s.health = health.New(checkers...) }
}

// New creates a Server over the given store and compiled edge catalogue.
func New(cfg *config.Config, store npc.Store, cat rules.Catalog, opts ...Option) *Server {
	s := &Server{
		addr:       cfg.Server.ListenAddr,
		tlsCfg:     cfg.Server.TLS,
		moduleName: cfg.Export.ModuleName,
		store:      store,
		catalog:    cat,
		resolver:   npc.NewResolver(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	if s.health == nil {
		s.health = health.New()
	}
	return s
}

// Handler builds the full route table wrapped in the observability
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Roster.
	mux.HandleFunc("GET /api/npcs", s.handleList)
	mux.HandleFunc("POST /api/npcs", s.handleCreate)
	mux.HandleFunc("GET /api/npcs/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/npcs/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/npcs/{id}", s.handleDelete)
	mux.HandleFunc("GET /api/npcs/{id}/statblock", s.handleStatblock)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/resolve", s.handleResolve)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/organisations", s.handleOrganisations)

	// Reports and exports.
	mux.HandleFunc("GET /api/audit", s.handleAudit)
	mux.HandleFunc("GET /api/export", s.handleExport)

	// Catalogue browsing.
	mux.HandleFunc("GET /api/catalog/edges", s.handleCatalogEdges)
	mux.HandleFunc("GET /api/catalog/hindrances", s.handleCatalogHindrances)
	mux.HandleFunc("GET /api/catalog/powers", s.handleCatalogPowers)
	mux.HandleFunc("GET /api/catalog/weapons", s.handleCatalogWeapons)
	mux.HandleFunc("GET /api/catalog/armor", s.handleCatalogArmor)
	mux.HandleFunc("GET /api/catalog/gear", s.handleCatalogGear)

	// Operational endpoints.
	s.health.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	return observe.Middleware(s.metrics)(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully. In-flight
// requests get [shutdownTimeout] to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if s.tlsCfg != nil {
			err = srv.ListenAndServeTLS(s.tlsCfg.CertFile, s.tlsCfg.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
