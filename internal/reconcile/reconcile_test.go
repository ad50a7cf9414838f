package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

func desc(url string) registry.Descriptor {
	return registry.Descriptor{Title: url, Subtitle: "s", Date: "Sep 14, 2016", URL: url, ImageFilename: "x.png"}
}

func source(slugs ...string) views.Static {
	src := views.Static{}
	for _, slug := range slugs {
		src[slug] = func(context.Context) (views.View, error) { return views.Func{Name: slug}, nil }
	}
	return src
}

func check(t *testing.T, descs []registry.Descriptor, src views.Source) error {
	t.Helper()
	reg, err := registry.New(descs)
	require.NoError(t, err)
	table, err := routes.Build(context.Background(), reg, src, nil)
	require.NoError(t, err)
	return Check(reg, table, src)
}

func problems(t *testing.T, err error) []Problem {
	t.Helper()
	var report *Report
	require.True(t, errors.As(err, &report), "expected *Report, got %v", err)
	return report.Problems
}

func TestCheck_Consistent(t *testing.T) {
	err := check(t,
		[]registry.Descriptor{desc("weather"), desc("bpm-3"), desc("//jpecht.com/vis-old/bpm_visual_2.html")},
		source("weather", "bpm-3"),
	)
	require.NoError(t, err)
}

func TestCheck_MigrationWithoutRouteFails(t *testing.T) {
	// Before: bpm-2 is hosted externally and everything is consistent.
	before := []registry.Descriptor{desc("bpm-3"), desc("//jpecht.com/vis-old/bpm_visual_2.html")}
	require.NoError(t, check(t, before, source("bpm-3")))

	// After: the url was switched to a slug, but no view module was added.
	after := []registry.Descriptor{desc("bpm-3"), desc("bpm-2")}
	err := check(t, after, source("bpm-3"))

	require.Equal(t, []Problem{{Slug: "bpm-2", Reason: "visualization has no view module; add bpm-2.html with the url change"}}, problems(t, err))
}

func TestCheck_RouteWithoutURLChangeFails(t *testing.T) {
	err := check(t,
		[]registry.Descriptor{desc("bpm-3"), desc("//jpecht.com/vis-old/bpm_visual_2.html")},
		source("bpm-3", "bpm-2"),
	)

	require.Equal(t, []Problem{{Slug: "bpm-2", Reason: "view module has no visualization"}}, problems(t, err))
}

func TestCheck_CompleteMigrationPasses(t *testing.T) {
	err := check(t, []registry.Descriptor{desc("bpm-3"), desc("bpm-2")}, source("bpm-3", "bpm-2"))
	require.NoError(t, err)
}

func TestCheck_TableOutOfSyncWithRegistry(t *testing.T) {
	built, err := registry.New([]registry.Descriptor{desc("weather"), desc("covid")})
	require.NoError(t, err)
	table, err := routes.Build(context.Background(), built, source("weather", "covid"), nil)
	require.NoError(t, err)

	// The registry the table is checked against has since dropped covid.
	current, err := registry.New([]registry.Descriptor{desc("weather"), desc("bpm-3")})
	require.NoError(t, err)

	got := problems(t, Check(current, table, source("weather", "bpm-3")))
	require.Contains(t, got, Problem{Slug: "covid", Reason: "route /covid has no visualization"})
	require.Contains(t, got, Problem{Slug: "bpm-3", Reason: "visualization has no route"})
}
