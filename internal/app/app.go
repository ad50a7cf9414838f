package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/livenav"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/reconcile"
	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/server"
	"github.com/vk/visgallery/internal/views"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	resolver *routes.Resolver
	metrics  *metrics.Metrics
	live     *livenav.Server
	handler  http.Handler

	httpServer   *http.Server
	healthServer *http.Server
}

// NewApp is the constructor for the main application. It loads the
// catalog, validates it, builds the route table and reconciles it against
// src. If src is nil, views are read from cfg.ViewsPath.
//
// Any failure here is a content-authoring defect, so NewApp panics instead
// of starting with a partial catalog.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, src views.Source) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if src == nil {
		src = views.NewFSSource(os.DirFS(cfg.ViewsPath))
	}
	basePath := server.NormalizeBasePath(cfg.BasePath)

	model, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}
	logger.Debug("Catalog loaded.", "visualizations", len(model.Visualizations), "routes", len(model.Routes))

	reg, err := registry.FromModel(model)
	if err != nil {
		panic(fmt.Errorf("invalid catalog: %w", err))
	}

	table, err := routes.Build(ctx, reg, src, model.Routes)
	if err != nil {
		panic(fmt.Errorf("failed to build route table: %w", err))
	}

	if err := reconcile.Check(reg, table, src); err != nil {
		panic(err)
	}
	logger.Debug("Catalog reconciliation passed.")

	m := metrics.New()
	m.Catalog(table.Len(), len(reg.External()))

	resolver := routes.NewResolver(table, routes.StaticLanding(server.NewLandingView(reg)))
	live := livenav.New(ctx, resolver, basePath, m)

	handler := server.NewRouter(server.Options{
		BasePath:   basePath,
		Resolver:   resolver,
		Metrics:    m,
		Logger:     logger,
		Thumbnails: dirFS(cfg.ThumbnailsPath),
		Static:     dirFS(cfg.StaticPath),
		Live:       live.Handler(),
	})

	logger.Info("Gallery ready.", "visualizations", reg.Len(), "routes", table.Len(), "external", len(reg.External()), "base_path", basePath)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		resolver: resolver,
		metrics:  m,
		live:     live,
		handler:  handler,
	}
}

func dirFS(path string) fs.FS {
	if path == "" {
		return nil
	}
	return os.DirFS(path)
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Resolver returns the application's route resolver.
func (a *App) Resolver() *routes.Resolver {
	return a.resolver
}

// Handler returns the site's HTTP handler. This is primarily for testing.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Metrics returns the application's metrics.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
