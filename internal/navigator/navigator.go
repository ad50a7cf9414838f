// Package navigator drives navigation for a single browsing context.
//
// Navigating to a routed path suspends until its view module has loaded.
// When a newer navigation starts before an older load finishes, the older
// result is dropped on arrival: only the most recent navigation is ever
// shown. Legacy redirects are synchronous and terminal for their
// navigation.
package navigator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

// BrowsingContext is whatever displays navigation results: a live socket,
// a test recorder, etc. Calls are serialized by the session.
type BrowsingContext interface {
	// Render shows v for the route entry e.
	Render(e *routes.Entry, v views.View)
	// Assign hands navigation off to a fully-qualified URL.
	Assign(url string)
	// NotFound shows the generic not-found presentation.
	NotFound(path string)
	// Failed reports a navigation-level error; the user may retry.
	Failed(path string, err error)
}

// ErrUnknownRoute is returned by NavigateNamed for names the table lacks.
var ErrUnknownRoute = errors.New("unknown route name")

// Session tracks navigations of one browsing context.
type Session struct {
	resolver *routes.Resolver
	bc       BrowsingContext
	metrics  *metrics.Metrics
	channel  string

	mu  sync.Mutex
	gen uint64
	wg  sync.WaitGroup
}

// New creates a session. channel labels the session's metrics.
func New(resolver *routes.Resolver, bc BrowsingContext, m *metrics.Metrics, channel string) *Session {
	return &Session{
		resolver: resolver,
		bc:       bc,
		metrics:  m,
		channel:  channel,
	}
}

// Navigate starts a navigation to path and returns how it resolved. For
// landing and routed paths the view is loaded in the background and
// rendered only if no newer navigation has started by then.
func (s *Session) Navigate(ctx context.Context, path string) routes.Resolution {
	logger := ctxlog.FromContext(ctx).With("path", path, "channel", s.channel)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	res := s.resolver.Resolve(path)
	s.metrics.Navigation(res.Kind.String(), s.channel)
	logger.Debug("Navigation resolved.", "kind", res.Kind.String(), "generation", gen)

	switch res.Kind {
	case routes.Redirect:
		logger.Info("Handing off legacy navigation.", "target", res.Target)
		s.bc.Assign(res.Target)
		s.mu.Unlock()
		return res
	case routes.NotFound:
		s.bc.NotFound(res.Path)
		s.mu.Unlock()
		return res
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.load(ctx, gen, res)
	return res
}

// NavigateNamed navigates to the route registered under name.
func (s *Session) NavigateNamed(ctx context.Context, name string) (routes.Resolution, error) {
	res, ok := s.resolver.Named(name)
	if !ok {
		return routes.Resolution{}, ErrUnknownRoute
	}
	return s.Navigate(ctx, res.Path), nil
}

func (s *Session) load(ctx context.Context, gen uint64, res routes.Resolution) {
	defer s.wg.Done()
	logger := ctxlog.FromContext(ctx).With("path", res.Path, "channel", s.channel)

	start := time.Now()
	view, err := res.Entry.Load(ctx)
	if res.Kind == routes.Routed {
		s.metrics.ViewLoad(res.Entry.Slug, time.Since(start), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		logger.Debug("Discarding stale navigation result.", "generation", gen, "current", s.gen)
		s.metrics.StaleDiscarded()
		return
	}
	if err != nil {
		logger.Warn("View failed to load.", "error", err)
		s.bc.Failed(res.Path, err)
		return
	}
	s.bc.Render(res.Entry, view)
}

// Wait blocks until every background load started so far has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}
