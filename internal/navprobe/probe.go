// Package navprobe drives one live navigation against a running gallery
// and reports the first answer. It is a smoke test for deployments.
package navprobe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/livenav"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Options configure a probe.
type Options struct {
	// URL is the gallery root including its base path, e.g.
	// "http://localhost:8080/vis".
	URL string
	// Path or Name selects the navigation. Name wins when both are set.
	Path string
	Name string

	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Reply is the first event the gallery answered with.
type Reply struct {
	Event   string
	Payload map[string]any
}

// Endpoint splits a gallery URL into the socket.io manager origin and the
// socket.io path under the base path.
func Endpoint(raw string) (origin, path string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("url %q must be absolute", raw)
	}
	return u.Scheme + "://" + u.Host, strings.TrimRight(u.Path, "/") + "/socket.io", nil
}

// Run connects, emits one navigate event and waits for the reply.
func Run(ctx context.Context, opts Options) (*Reply, error) {
	if opts.Path == "" && opts.Name == "" {
		return nil, errors.New("either a path or a route name is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	logger := ctxlog.FromContext(ctx).With("url", opts.URL)

	origin, path, err := Endpoint(opts.URL)
	if err != nil {
		return nil, err
	}

	clientOpts := socket.DefaultOptions()
	clientOpts.SetPath(path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		clientOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	clientOpts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(origin, clientOpts)
	io := manager.Socket("/", clientOpts)
	defer io.Disconnect()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	connected := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected.", "sid", io.Id())
		connected <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("%v", errs[0])
		}
		connected <- err
	})

	replies := make(chan *Reply, 1)
	for _, event := range []string{livenav.EventRender, livenav.EventRedirect, livenav.EventNotFound, livenav.EventError} {
		io.On(types.EventName(event), func(data ...any) {
			reply := &Reply{Event: event}
			if len(data) > 0 {
				reply.Payload, _ = data[0].(map[string]any)
			}
			select {
			case replies <- reply:
			default:
			}
		})
	}

	io.Connect()
	select {
	case err := <-connected:
		if err != nil {
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", opts.Timeout)
	}

	var payload any = opts.Path
	if opts.Name != "" {
		payload = map[string]any{"name": opts.Name}
	}
	logger.Debug("Emitting navigate.", "payload", payload)
	io.Emit(livenav.EventNavigate, payload)

	select {
	case reply := <-replies:
		return reply, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("timed out after %v waiting for a navigation reply", opts.Timeout)
	}
}

// Summary renders reply as a single human readable line.
func (r *Reply) Summary() string {
	switch r.Event {
	case livenav.EventRender:
		html, _ := r.Payload["html"].(string)
		return fmt.Sprintf("render %v (%d bytes)", r.Payload["path"], len(html))
	case livenav.EventRedirect:
		return fmt.Sprintf("redirect %v", r.Payload["url"])
	case livenav.EventNotFound:
		return fmt.Sprintf("not found %v", r.Payload["path"])
	default:
		return fmt.Sprintf("%s %v", r.Event, r.Payload["error"])
	}
}
