package views

import (
	"context"
	"errors"
	"sort"
)

// Factory produces a view on demand.
type Factory func(ctx context.Context) (View, error)

// Static is an in-memory Source, mostly useful for views compiled into the
// binary and for tests.
type Static map[string]Factory

// Slugs implements Source.
func (s Static) Slugs() []string {
	slugs := make([]string, 0, len(s))
	for slug := range s {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Has implements Source.
func (s Static) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}

// Open implements Source.
func (s Static) Open(ctx context.Context, slug string) (View, error) {
	f, ok := s[slug]
	if !ok {
		return nil, &LoadError{Slug: slug, Err: errors.New("no such view")}
	}
	v, err := f(ctx)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Slug: slug, Err: err}
	}
	return v, nil
}
