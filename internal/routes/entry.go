package routes

import (
	"context"
	"sync/atomic"

	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/views"
	"golang.org/x/sync/singleflight"
)

// LoadFunc is a deferred factory for a route's view module.
type LoadFunc func(ctx context.Context) (views.View, error)

// Entry binds one path to a deferred view loader.
type Entry struct {
	Path string
	// Name is an optional stable identifier for programmatic navigation.
	Name string
	Slug string
	// Descriptor is the catalog entry the route serves. It is the zero
	// value for the landing route.
	Descriptor registry.Descriptor
	Loader     LoadFunc

	flight *singleflight.Group
	loaded atomic.Pointer[loadedView]
}

type loadedView struct {
	view views.View
}

func newEntry(path, name, slug string, d registry.Descriptor, loader LoadFunc, flight *singleflight.Group) *Entry {
	return &Entry{
		Path:       path,
		Name:       name,
		Slug:       slug,
		Descriptor: d,
		Loader:     loader,
		flight:     flight,
	}
}

// Load returns the entry's view, invoking the loader on first use.
// Concurrent callers share a single in-flight load. A successful result is
// kept for the life of the process; a failure is not, so the next call
// retries.
//
// The shared load is detached from the caller's cancellation, so one caller
// giving up does not fail the others. Each caller still returns early when
// its own ctx is done.
func (e *Entry) Load(ctx context.Context) (views.View, error) {
	if lv := e.loaded.Load(); lv != nil {
		return lv.view, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := e.flight.DoChan(e.Path, func() (any, error) {
		if lv := e.loaded.Load(); lv != nil {
			return lv.view, nil
		}
		view, err := e.Loader(loadCtx)
		if err != nil {
			return nil, err
		}
		e.loaded.Store(&loadedView{view: view})
		return view, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(views.View), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Loaded reports whether the view has been resolved.
func (e *Entry) Loaded() bool {
	return e.loaded.Load() != nil
}
