// Package livenav serves in-app navigation over socket.io. Each connection
// is one browsing context: the client emits "navigate" and the server
// answers with "render", "redirect", "not_found" or "nav_error".
package livenav

import (
	"context"
	"net/http"

	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/navigator"
	"github.com/vk/visgallery/internal/routes"
	"github.com/zishang520/socket.io/v2/socket"
)

// Event names on the wire.
const (
	EventNavigate = "navigate"
	EventRender   = "render"
	EventRedirect = "redirect"
	EventNotFound = "not_found"
	EventError    = "nav_error"
)

// Server owns the socket.io server.
type Server struct {
	io       *socket.Server
	opts     *socket.ServerOptions
	resolver *routes.Resolver
	basePath string
	metrics  *metrics.Metrics
}

// New creates a socket.io server whose endpoint lives at basePath+"/socket.io".
// ctx carries the logger and bounds every session.
func New(ctx context.Context, resolver *routes.Resolver, basePath string, m *metrics.Metrics) *Server {
	opts := socket.DefaultServerOptions()
	opts.SetPath(basePath + "/socket.io")

	s := &Server{
		io:       socket.NewServer(nil, opts),
		opts:     opts,
		resolver: resolver,
		basePath: basePath,
		metrics:  m,
	}

	s.io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		s.accept(ctx, client)
	})
	return s
}

// Handler returns the HTTP handler to mount at the socket.io path.
func (s *Server) Handler() http.Handler {
	return s.io.ServeHandler(s.opts)
}

// Close disconnects every client.
func (s *Server) Close() {
	s.io.Close(nil)
}

func (s *Server) accept(ctx context.Context, client *socket.Socket) {
	ctx, logger := ctxlog.With(ctx, "sid", client.Id())
	connCtx, cancel := context.WithCancel(ctx)
	logger.Info("Live navigation client connected.")

	emit := func(event string, payload any) {
		client.Emit(event, payload)
	}
	session := navigator.New(s.resolver, newSocketContext(emit, s.basePath, logger), s.metrics, "live")

	client.On(EventNavigate, func(args ...any) {
		handleNavigate(connCtx, session, emit, args)
	})
	client.On("disconnect", func(reason ...any) {
		logger.Info("Live navigation client disconnected.", "reason", reason)
		cancel()
	})
}
