package config

// Model is the unified, format-agnostic representation of a gallery
// catalog: the ordered visualization list plus the route overlays.
type Model struct {
	Visualizations []*Visualization
	Routes         []*RouteOverlay
}

// Visualization is the format-agnostic representation of one catalog entry.
// Fields are copied verbatim from the source; validation happens when the
// registry is built.
type Visualization struct {
	Title           string
	Subtitle        string
	Date            string
	URL             string
	ImageFilename   string
	Description     string
	PostDescription string

	// Source names the file the entry was read from, for diagnostics.
	Source string
}

// RouteOverlay carries route-specific metadata for an in-app entry, keyed
// by its slug. The route path itself is always derived from the slug.
type RouteOverlay struct {
	Slug string
	Name string

	Source string
}

// Merge appends the contents of other to m, preserving order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Visualizations = append(m.Visualizations, other.Visualizations...)
	m.Routes = append(m.Routes, other.Routes...)
}
