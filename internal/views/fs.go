package views

import (
	"context"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"sort"
	"strings"
)

// Extension is the file suffix of view modules in an FSSource.
const Extension = ".html"

// FSSource loads views from "<slug>.html" templates at the root of a
// file system.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source backed by fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Slugs implements Source.
func (s *FSSource) Slugs() []string {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(slugs)
	return slugs
}

// Has implements Source.
func (s *FSSource) Has(slug string) bool {
	info, err := fs.Stat(s.fsys, slug+Extension)
	return err == nil && !info.IsDir()
}

// Open implements Source. The template is read and parsed on every call;
// callers memoize.
func (s *FSSource) Open(ctx context.Context, slug string) (View, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Slug: slug, Err: err}
	}
	if !fs.ValidPath(slug) || strings.Contains(slug, "/") {
		return nil, &LoadError{Slug: slug, Err: errors.New("invalid slug")}
	}

	raw, err := fs.ReadFile(s.fsys, slug+Extension)
	if err != nil {
		return nil, &LoadError{Slug: slug, Err: err}
	}
	tmpl, err := template.New(slug).Parse(string(raw))
	if err != nil {
		return nil, &LoadError{Slug: slug, Err: err}
	}
	return &templateView{slug: slug, tmpl: tmpl}, nil
}

type templateView struct {
	slug string
	tmpl *template.Template
}

func (v *templateView) Slug() string { return v.slug }

func (v *templateView) Render(w io.Writer, data Data) error {
	return v.tmpl.Execute(w, data)
}
