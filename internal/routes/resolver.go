package routes

import (
	"context"

	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/views"
	"golang.org/x/sync/singleflight"
)

// Kind classifies the outcome of resolving a path.
type Kind int

const (
	// NotFound means no route claims the path and it is not absolute.
	NotFound Kind = iota
	// Landing is the catalog's home page.
	Landing
	// Routed means the path matched a route table entry.
	Routed
	// Redirect means the path is an absolute reference to hand off.
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Landing:
		return "landing"
	case Routed:
		return "routed"
	case Redirect:
		return "redirect"
	default:
		return "not_found"
	}
}

// Resolution is the result of matching one navigation path.
type Resolution struct {
	Kind Kind
	Path string
	// Entry is set for Landing and Routed.
	Entry *Entry
	// Target is the full URL for Redirect.
	Target string
}

// LandingPath and LandingName locate the landing page. LandingName is
// reserved: no route overlay may use it.
const (
	LandingPath = "/"
	LandingName = "home"
)

// Resolver matches paths against the landing page, the route table, and
// finally the lowest-priority wildcard.
type Resolver struct {
	table   *Table
	landing *Entry
	flight  singleflight.Group
}

// NewResolver builds a resolver over table. landing produces the home page
// view and is loaded lazily like any other route.
func NewResolver(table *Table, landing LoadFunc) *Resolver {
	r := &Resolver{table: table}
	r.landing = newEntry(LandingPath, LandingName, "", registry.Descriptor{}, landing, &r.flight)
	return r
}

// Table returns the underlying route table.
func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve classifies path. It never invokes a loader.
func (r *Resolver) Resolve(path string) Resolution {
	if path == "" || path == LandingPath {
		return Resolution{Kind: Landing, Path: LandingPath, Entry: r.landing}
	}
	if e, ok := r.table.Resolve(path); ok {
		return Resolution{Kind: Routed, Path: path, Entry: e}
	}
	if target, ok := LegacyTarget(path); ok {
		return Resolution{Kind: Redirect, Path: path, Target: target}
	}
	return Resolution{Kind: NotFound, Path: path}
}

// Named resolves the route registered under name; LandingName is the
// landing page.
func (r *Resolver) Named(name string) (Resolution, bool) {
	if name == r.landing.Name {
		return r.Resolve(LandingPath), true
	}
	path, ok := r.table.PathFor(name)
	if !ok {
		return Resolution{}, false
	}
	return r.Resolve(path), true
}

// StaticLanding wraps a prebuilt view as a landing loader.
func StaticLanding(v views.View) LoadFunc {
	return func(context.Context) (views.View, error) { return v, nil }
}
