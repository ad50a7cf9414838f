package views

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/vk/visgallery/internal/registry"
)

func TestFSSource_OpenAndRender(t *testing.T) {
	src := NewFSSource(fstest.MapFS{
		"bpm-3.html":    {Data: []byte(`<h1>{{.Descriptor.Title}}</h1><a href="{{.BasePath}}/">home</a>`)},
		"weather.html":  {Data: []byte(`weather`)},
		"notes.txt":     {Data: []byte(`ignored`)},
		"nested/x.html": {Data: []byte(`ignored`)},
	})

	require.Equal(t, []string{"bpm-3", "weather"}, src.Slugs())
	require.True(t, src.Has("bpm-3"))
	require.False(t, src.Has("notes"))

	v, err := src.Open(context.Background(), "bpm-3")
	require.NoError(t, err)
	require.Equal(t, "bpm-3", v.Slug())

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf, Data{Descriptor: registry.Descriptor{Title: "BPM <3>"}, BasePath: "/vis"}))
	require.Equal(t, `<h1>BPM &lt;3&gt;</h1><a href="/vis/">home</a>`, buf.String())
}

func TestFSSource_OpenMissing(t *testing.T) {
	src := NewFSSource(fstest.MapFS{})

	_, err := src.Open(context.Background(), "bpm-2")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Equal(t, "bpm-2", le.Slug)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSSource_OpenBadTemplate(t *testing.T) {
	src := NewFSSource(fstest.MapFS{"broken.html": {Data: []byte(`{{.Unclosed`)}})

	_, err := src.Open(context.Background(), "broken")
	var le *LoadError
	require.True(t, errors.As(err, &le))
}

func TestFSSource_OpenRejectsTraversal(t *testing.T) {
	src := NewFSSource(fstest.MapFS{})

	_, err := src.Open(context.Background(), "../etc/passwd")
	require.Error(t, err)
}

func TestStatic(t *testing.T) {
	boom := errors.New("asset missing")
	src := Static{
		"weather": func(context.Context) (View, error) {
			return Func{Name: "weather", Fn: func(w io.Writer, _ Data) error {
				_, err := io.WriteString(w, "sunny")
				return err
			}}, nil
		},
		"covid": func(context.Context) (View, error) { return nil, boom },
	}

	require.Equal(t, []string{"covid", "weather"}, src.Slugs())

	v, err := src.Open(context.Background(), "weather")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf, Data{}))
	require.Equal(t, "sunny", buf.String())

	_, err = src.Open(context.Background(), "covid")
	require.ErrorIs(t, err, boom)
	var le *LoadError
	require.True(t, errors.As(err, &le))

	_, err = src.Open(context.Background(), "nope")
	require.True(t, errors.As(err, &le))
}
