package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/visgallery/internal/metrics"
	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

type fixture struct {
	handler     http.Handler
	weatherFail atomic.Bool
	loads       atomic.Int32
}

func newFixture(t *testing.T, basePath string) *fixture {
	t.Helper()
	mk := func(title, url string) registry.Descriptor {
		return registry.Descriptor{Title: title, Subtitle: "s", Date: "Jul 10, 2017", URL: url, ImageFilename: title + ".png"}
	}
	reg, err := registry.New([]registry.Descriptor{
		mk("Weather", "weather"),
		mk("BPM", "bpm-3"),
		mk("Snow", "//jpecht.com/vis-old/dc_snowfall.html"),
		mk("Legacy", "https://example.com/legacy.html"),
	})
	require.NoError(t, err)

	f := &fixture{}
	src := views.Static{
		"weather": func(context.Context) (views.View, error) {
			f.loads.Add(1)
			if f.weatherFail.Load() {
				return nil, errors.New("asset missing")
			}
			return views.Func{Name: "weather", Fn: func(w io.Writer, d views.Data) error {
				_, err := io.WriteString(w, "<h1>"+d.Descriptor.Title+"</h1><a href=\""+d.BasePath+"/\">")
				return err
			}}, nil
		},
		"bpm-3": func(context.Context) (views.View, error) {
			f.loads.Add(1)
			return views.Func{Name: "bpm-3", Fn: func(w io.Writer, d views.Data) error {
				_, err := io.WriteString(w, "bpm three")
				return err
			}}, nil
		},
	}
	table, err := routes.Build(context.Background(), reg, src, nil)
	require.NoError(t, err)

	f.handler = NewRouter(Options{
		BasePath:   basePath,
		Resolver:   routes.NewResolver(table, routes.StaticLanding(NewLandingView(reg))),
		Metrics:    metrics.New(),
		Thumbnails: fstest.MapFS{"Weather.png": {Data: []byte("png")}},
	})
	return f
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{"": "", "/": "", "vis": "/vis", "/vis/": "/vis", " /a/b/ ": "/a/b"} {
		assert.Equal(t, want, NormalizeBasePath(in), in)
	}
}

func TestRouter_LandingListsCatalogInOrder(t *testing.T) {
	f := newFixture(t, "/vis/")

	for _, path := range []string{"/vis", "/vis/"} {
		rec := f.get(path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		body := rec.Body.String()
		iWeather := strings.Index(body, `href="/vis/weather"`)
		iBPM := strings.Index(body, `href="/vis/bpm-3"`)
		iSnow := strings.Index(body, `href="/vis//jpecht.com/vis-old/dc_snowfall.html"`)
		iLegacy := strings.Index(body, `href="/vis/https://example.com/legacy.html"`)
		require.True(t, iWeather >= 0 && iWeather < iBPM && iBPM < iSnow && iSnow < iLegacy, body)
		require.Contains(t, body, `src="/vis/thumbnails/Weather.png"`)
	}
	require.Zero(t, f.loads.Load(), "landing must not load catalog views")
}

func TestRouter_RoutedView(t *testing.T) {
	f := newFixture(t, "/vis")

	rec := f.get("/vis/weather")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `<h1>Weather</h1><a href="/vis/">`, rec.Body.String())
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	rec = f.get("/vis/bpm-3")
	require.Equal(t, "bpm three", rec.Body.String())
}

func TestRouter_LegacyRedirect(t *testing.T) {
	f := newFixture(t, "/vis")

	rec := f.get("/vis//example.com/old-page.html?year=2016")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "//example.com/old-page.html?year=2016", rec.Header().Get("Location"))

	rec = f.get("/vis/https://example.com/legacy.html")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://example.com/legacy.html", rec.Header().Get("Location"))

	require.Zero(t, f.loads.Load())
}

func TestRouter_LegacyRedirectWithoutBasePath(t *testing.T) {
	f := newFixture(t, "")

	rec := f.get("//jpecht.com/vis-old/dc_snowfall.html")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "//jpecht.com/vis-old/dc_snowfall.html", rec.Header().Get("Location"))

	rec = f.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_NotFound(t *testing.T) {
	f := newFixture(t, "/vis")

	rec := f.get("/vis/covid")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Nothing lives at /covid.")
	require.Empty(t, rec.Header().Get("Location"))

	rec = f.get("/elsewhere")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_LoadFailureCanBeRetried(t *testing.T) {
	f := newFixture(t, "")
	f.weatherFail.Store(true)

	rec := f.get("/weather")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "Could not load this visualization")

	f.weatherFail.Store(false)
	rec = f.get("/weather")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int32(2), f.loads.Load())

	f.get("/weather")
	require.Equal(t, int32(2), f.loads.Load(), "successful load is memoized")
}

func TestRouter_Thumbnails(t *testing.T) {
	f := newFixture(t, "/vis")

	rec := f.get("/vis/thumbnails/Weather.png")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "png", rec.Body.String())
}
