package views

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/visgallery/internal/registry"
)

// Data is what a view receives when it renders.
type Data struct {
	Descriptor registry.Descriptor
	// BasePath is the prefix every in-app link must carry.
	BasePath string
}

// View renders one visualization page.
type View interface {
	Slug() string
	Render(w io.Writer, data Data) error
}

// Source provides view modules by slug.
type Source interface {
	// Slugs lists every view the source can open, sorted.
	Slugs() []string
	// Has reports whether a view exists for slug without loading it.
	Has(slug string) bool
	// Open loads the view for slug. Failures are returned as *LoadError.
	Open(ctx context.Context, slug string) (View, error)
}

// LoadError reports a view module that could not be loaded.
type LoadError struct {
	Slug string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading view %q: %v", e.Slug, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Func adapts a render function to the View interface.
type Func struct {
	Name string
	Fn   func(w io.Writer, data Data) error
}

// Slug implements View.
func (f Func) Slug() string { return f.Name }

// Render implements View.
func (f Func) Render(w io.Writer, data Data) error { return f.Fn(w, data) }
