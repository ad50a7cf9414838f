// Package server exposes the gallery over HTTP, mounted under a configurable
// base path.
package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/routes"
)

const (
	// ThumbnailPrefix is where catalog thumbnails are served, below the base path.
	ThumbnailPrefix = "/thumbnails/"
	// LivePrefix is where the live navigation channel is mounted.
	LivePrefix = "/socket.io"
)

// Options configures the HTTP router.
type Options struct {
	// BasePath is normalized with NormalizeBasePath.
	BasePath string
	Resolver *routes.Resolver
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	// Thumbnails serves catalog images; nil disables them.
	Thumbnails fs.FS
	// Static serves stylesheets and scripts under /static/; nil disables them.
	Static fs.FS
	// Live handles the socket.io endpoint; nil disables it.
	Live http.Handler
}

// NormalizeBasePath turns "", "/", "vis", "/vis/" into "", "", "/vis", "/vis".
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// NewRouter builds the HTTP handler for the whole site.
func NewRouter(opts Options) http.Handler {
	base := NormalizeBasePath(opts.BasePath)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	if opts.Live != nil {
		r.Handle(base+LivePrefix, opts.Live)
		r.Handle(base+LivePrefix+"/*", opts.Live)
	}

	r.Group(func(r chi.Router) {
		r.Use(requestLogger(logger))
		r.Use(middleware.Recoverer)

		if opts.Thumbnails != nil {
			r.Handle(base+ThumbnailPrefix+"*", http.StripPrefix(base+ThumbnailPrefix, http.FileServerFS(opts.Thumbnails)))
		}
		if opts.Static != nil {
			r.Handle(base+"/static/*", http.StripPrefix(base+"/static/", http.FileServerFS(opts.Static)))
		}

		var gallery http.Handler = &galleryHandler{
			resolver: opts.Resolver,
			basePath: base,
			metrics:  opts.Metrics,
		}
		if base != "" {
			gallery = http.StripPrefix(base, gallery)
			r.Handle(base, gallery)
		}
		r.Handle(base+"/*", gallery)
	})

	return r
}

// requestLogger puts a request-scoped logger on the context and logs each
// response at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctxlog.WithLogger(r.Context(), reqLogger)))

			reqLogger.Debug("Request served.", "status", ww.Status(), "bytes", ww.BytesWritten(), "duration", time.Since(start))
		})
	}
}
