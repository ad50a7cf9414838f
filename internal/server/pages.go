package server

import (
	"embed"
	"html/template"
	"io"

	"github.com/vk/visgallery/internal/registry"
	"github.com/vk/visgallery/internal/routes"
	"github.com/vk/visgallery/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// landingItem is one card on the landing page.
type landingItem struct {
	Title     string
	Subtitle  string
	Date      string
	Href      string
	Thumbnail string
}

type statusPage struct {
	Heading  string
	Message  string
	BasePath string
}

// LandingView renders the catalog grid in registry order. Every card links
// through the router, external entries included.
type LandingView struct {
	reg *registry.Registry
}

// NewLandingView returns the landing page view for reg.
func NewLandingView(reg *registry.Registry) *LandingView {
	return &LandingView{reg: reg}
}

// Slug implements views.View.
func (v *LandingView) Slug() string { return routes.LandingName }

// Render implements views.View.
func (v *LandingView) Render(w io.Writer, data views.Data) error {
	all := v.reg.All()
	items := make([]landingItem, 0, len(all))
	for _, d := range all {
		items = append(items, landingItem{
			Title:     d.Title,
			Subtitle:  d.Subtitle,
			Date:      d.Date,
			Href:      data.BasePath + routes.LinkPath(d.URL),
			Thumbnail: data.BasePath + ThumbnailPrefix + d.ImageFilename,
		})
	}
	return pages.ExecuteTemplate(w, "landing", struct {
		BasePath string
		Items    []landingItem
	}{data.BasePath, items})
}

func renderStatus(w io.Writer, heading, message, basePath string) error {
	return pages.ExecuteTemplate(w, "status", statusPage{Heading: heading, Message: message, BasePath: basePath})
}
