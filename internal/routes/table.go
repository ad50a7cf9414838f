package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/views"
	"golang.org/x/sync/singleflight"
)

// Table is the immutable set of in-app routes.
type Table struct {
	entries []*Entry
	byPath  map[string]*Entry
	byName  map[string]*Entry
	flight  singleflight.Group
}

// PathFor converts a descriptor slug into its route path.
func PathFor(slug string) string {
	return "/" + slug
}

// Build derives the route table from reg. Each in-app descriptor is bound
// to a loader that opens its view from src on first navigation; src is not
// consulted here. Overlays attach route-only metadata by slug and must
// refer to in-app descriptors.
func Build(ctx context.Context, reg *registry.Registry, src views.Source, overlays []*config.RouteOverlay) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	names, err := overlayNames(reg, overlays)
	if err != nil {
		return nil, err
	}

	t := &Table{
		byPath: make(map[string]*Entry),
		byName: make(map[string]*Entry),
	}
	for _, d := range reg.All() {
		slug := d.Slug()
		if slug == "" {
			continue
		}
		path := PathFor(slug)
		if _, dup := t.byPath[path]; dup {
			return nil, fmt.Errorf("route %q declared twice", path)
		}

		loader := func(ctx context.Context) (views.View, error) {
			return src.Open(ctx, slug)
		}
		e := newEntry(path, names[slug], slug, d, loader, &t.flight)
		t.entries = append(t.entries, e)
		t.byPath[path] = e
		if e.Name != "" {
			t.byName[e.Name] = e
		}
	}

	logger.Debug("Route table built.", "routes", len(t.entries), "named", len(t.byName))
	return t, nil
}

// overlayNames validates overlays against reg and returns the name per slug.
func overlayNames(reg *registry.Registry, overlays []*config.RouteOverlay) (map[string]string, error) {
	var errs []error
	names := make(map[string]string)
	slugByName := make(map[string]string)
	seen := make(map[string]struct{})

	for _, o := range overlays {
		d, ok := reg.Lookup(o.Slug)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("route %q (%s): no visualization has this slug", o.Slug, o.Source))
			continue
		case d.IsExternal():
			errs = append(errs, fmt.Errorf("route %q (%s): visualization is external", o.Slug, o.Source))
			continue
		}
		if _, dup := seen[o.Slug]; dup {
			errs = append(errs, fmt.Errorf("route %q (%s): declared more than once", o.Slug, o.Source))
			continue
		}
		seen[o.Slug] = struct{}{}

		if o.Name == "" {
			continue
		}
		if o.Name == LandingName {
			errs = append(errs, fmt.Errorf("route %q (%s): name %q is reserved for the landing page", o.Slug, o.Source, o.Name))
			continue
		}
		if other, dup := slugByName[o.Name]; dup {
			errs = append(errs, fmt.Errorf("route name %q used by both %q and %q", o.Name, other, o.Slug))
			continue
		}
		slugByName[o.Name] = o.Slug
		names[o.Slug] = o.Name
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid route overlays: %w", err)
	}
	return names, nil
}

// Resolve returns the entry whose path equals path exactly.
func (t *Table) Resolve(path string) (*Entry, bool) {
	e, ok := t.byPath[path]
	return e, ok
}

// PathFor returns the path of the route registered under name.
func (t *Table) PathFor(name string) (string, bool) {
	e, ok := t.byName[name]
	if !ok {
		return "", false
	}
	return e.Path, true
}

// Entries returns the routes in registry order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.entries)
}
