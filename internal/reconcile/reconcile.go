// Package reconcile checks that the catalog, the route table and the
// available view modules describe the same set of in-app visualizations.
//
// Moving an entry from external hosting to an in-app route takes two edits
// in one deployment: the descriptor's url changes from an absolute reference
// to a bare slug, and a view module for that slug is added. Check fails if
// only one side of that change is present.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

// Problem is a single inconsistency.
type Problem struct {
	Slug   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Slug, p.Reason)
}

// Report lists every inconsistency found by Check.
type Report struct {
	Problems []Problem
}

func (r *Report) Error() string {
	lines := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("catalog reconciliation failed:\n- %s", strings.Join(lines, "\n- "))
}

func (r *Report) add(slug, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Slug: slug, Reason: fmt.Sprintf(format, args...)})
}

// Check compares reg, table and src. It returns nil or a *Report.
func Check(reg *registry.Registry, table *routes.Table, src views.Source) error {
	report := &Report{}

	routesBySlug := make(map[string]int)
	for _, e := range table.Entries() {
		routesBySlug[e.Slug]++

		d, ok := reg.Lookup(e.Slug)
		switch {
		case !ok:
			report.add(e.Slug, "route %s has no visualization", e.Path)
		case d.IsExternal():
			report.add(e.Slug, "route %s points at an external visualization", e.Path)
		case e.Path != routes.PathFor(e.Slug):
			report.add(e.Slug, "route path %s does not match slug", e.Path)
		}
	}

	for _, d := range reg.All() {
		if d.IsExternal() {
			continue
		}
		slug := d.Slug()
		switch n := routesBySlug[slug]; {
		case n == 0:
			report.add(slug, "visualization has no route")
		case n > 1:
			report.add(slug, "visualization has %d routes", n)
		}
		if !src.Has(slug) {
			report.add(slug, "visualization has no view module; add %s%s with the url change", slug, views.Extension)
		}
	}

	for _, slug := range src.Slugs() {
		if _, ok := reg.Lookup(slug); !ok {
			report.add(slug, "view module has no visualization")
		}
	}

	if len(report.Problems) == 0 {
		return nil
	}
	return report
}
