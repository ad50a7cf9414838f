package livenav

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/vk/visgallery/internal/navigator"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

// emitFunc sends one event to the connected client.
type emitFunc func(event string, payload any)

// socketContext is a navigator.BrowsingContext backed by a socket.
type socketContext struct {
	emit     emitFunc
	basePath string
	logger   *slog.Logger
}

func newSocketContext(emit emitFunc, basePath string, logger *slog.Logger) *socketContext {
	return &socketContext{emit: emit, basePath: basePath, logger: logger}
}

func (c *socketContext) Render(e *routes.Entry, v views.View) {
	var buf bytes.Buffer
	if err := v.Render(&buf, views.Data{Descriptor: e.Descriptor, BasePath: c.basePath}); err != nil {
		c.logger.Error("View failed to render.", "view", v.Slug(), "error", err)
		c.Failed(e.Path, err)
		return
	}
	c.emit(EventRender, map[string]any{"path": e.Path, "html": buf.String()})
}

func (c *socketContext) Assign(url string) {
	c.emit(EventRedirect, map[string]any{"url": url})
}

func (c *socketContext) NotFound(path string) {
	c.emit(EventNotFound, map[string]any{"path": path})
}

func (c *socketContext) Failed(path string, err error) {
	c.emit(EventError, map[string]any{"path": path, "error": err.Error()})
}

var errBadNavigate = errors.New(`navigate expects a path string or {"path": ...} / {"name": ...}`)

// handleNavigate decodes a navigate payload and starts the navigation.
func handleNavigate(ctx context.Context, session *navigator.Session, emit emitFunc, args []any) {
	if len(args) == 0 {
		emit(EventError, map[string]any{"error": errBadNavigate.Error()})
		return
	}

	switch p := args[0].(type) {
	case string:
		session.Navigate(ctx, p)
		return
	case map[string]any:
		if path, ok := p["path"].(string); ok {
			session.Navigate(ctx, path)
			return
		}
		if name, ok := p["name"].(string); ok {
			if _, err := session.NavigateNamed(ctx, name); err != nil {
				emit(EventError, map[string]any{"name": name, "error": err.Error()})
			}
			return
		}
	}
	emit(EventError, map[string]any{"error": errBadNavigate.Error()})
}
