package server

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

// galleryHandler serves base-relative paths through the resolver.
type galleryHandler struct {
	resolver *routes.Resolver
	basePath string
	metrics  *metrics.Metrics
}

func (h *galleryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())

	res := h.resolver.Resolve(r.URL.Path)
	h.metrics.Navigation(res.Kind.String(), "http")

	switch res.Kind {
	case routes.Redirect:
		target := res.Target
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		logger.Info("Handing off legacy navigation.", "target", target)
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusFound)
		return
	case routes.NotFound:
		h.status(w, r, http.StatusNotFound, "Not found", fmt.Sprintf("Nothing lives at %s.", res.Path))
		return
	}

	start := time.Now()
	view, err := res.Entry.Load(r.Context())
	if res.Kind == routes.Routed {
		h.metrics.ViewLoad(res.Entry.Slug, time.Since(start), err)
	}
	if err != nil {
		logger.Warn("View failed to load.", "error", err)
		h.status(w, r, http.StatusBadGateway, "Could not load this visualization", "Please try again in a moment.")
		return
	}

	var buf bytes.Buffer
	if err := view.Render(&buf, views.Data{Descriptor: res.Entry.Descriptor, BasePath: h.basePath}); err != nil {
		logger.Error("View failed to render.", "view", view.Slug(), "error", err)
		h.status(w, r, http.StatusInternalServerError, "Could not render this visualization", "Please try again in a moment.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *galleryHandler) status(w http.ResponseWriter, r *http.Request, code int, heading, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := renderStatus(w, heading, message, h.basePath); err != nil {
		ctxlog.FromContext(r.Context()).Error("Failed to render status page.", "status", code, "error", err)
	}
}
