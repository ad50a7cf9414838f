package registry

import (
	"net/url"
	"strings"

	"github.com/vk/visgallery/internal/config"
)

// Descriptor describes a single visualization in the catalog.
type Descriptor struct {
	Title    string
	Subtitle string
	// Date is display text only; it is never parsed or sorted on.
	Date          string
	URL           string
	ImageFilename string

	Description     string
	PostDescription string

	// Source is the catalog file the descriptor was read from. It is
	// diagnostic only.
	Source string
}

// IsExternal reports whether the descriptor points at externally hosted
// legacy content instead of an in-app route.
func (d Descriptor) IsExternal() bool {
	return IsExternal(d.URL)
}

// Slug returns the in-app slug, or "" for external descriptors.
func (d Descriptor) Slug() string {
	if d.IsExternal() {
		return ""
	}
	return d.URL
}

// IsExternal reports whether ref is an absolute reference: either
// protocol-relative ("//host/path") or carrying a scheme and host.
func IsExternal(ref string) bool {
	if strings.HasPrefix(ref, "//") {
		return true
	}
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Registry is an immutable, ordered collection of descriptors.
type Registry struct {
	descriptors []Descriptor
	byURL       map[string]int
}

// New validates descs and returns a registry preserving their order.
func New(descs []Descriptor) (*Registry, error) {
	if err := Validate(descs); err != nil {
		return nil, err
	}

	r := &Registry{
		descriptors: make([]Descriptor, len(descs)),
		byURL:       make(map[string]int, len(descs)),
	}
	copy(r.descriptors, descs)
	for i, d := range r.descriptors {
		r.byURL[d.URL] = i
	}
	return r, nil
}

// FromModel converts the loaded catalog model into a registry.
func FromModel(model *config.Model) (*Registry, error) {
	descs := make([]Descriptor, 0, len(model.Visualizations))
	for _, v := range model.Visualizations {
		descs = append(descs, Descriptor{
			Title:           v.Title,
			Subtitle:        v.Subtitle,
			Date:            v.Date,
			URL:             v.URL,
			ImageFilename:   v.ImageFilename,
			Description:     v.Description,
			PostDescription: v.PostDescription,
			Source:          v.Source,
		})
	}
	return New(descs)
}

// All returns the descriptors in display order. The slice is a copy.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Lookup finds the descriptor with the given url.
func (r *Registry) Lookup(url string) (Descriptor, bool) {
	i, ok := r.byURL[url]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Slugs returns the slugs of all in-app descriptors, in display order.
func (r *Registry) Slugs() []string {
	var slugs []string
	for _, d := range r.descriptors {
		if s := d.Slug(); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// External returns the descriptors served by the legacy redirect, in display order.
func (r *Registry) External() []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if d.IsExternal() {
			out = append(out, d)
		}
	}
	return out
}
