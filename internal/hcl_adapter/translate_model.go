package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from a catalog file.
type fileRoot struct {
	Visualizations []*Visualization `hcl:"visualization,block"`
	Routes         []*Route         `hcl:"route,block"`
}

// Visualization is the HCL shape of one catalog entry. Every attribute is
// optional at the HCL level so that missing fields are reported by the
// registry with the entry's index instead of as a decode failure.
type Visualization struct {
	Title           hcl.Expression `hcl:"title,optional"`
	Subtitle        hcl.Expression `hcl:"subtitle,optional"`
	Date            hcl.Expression `hcl:"date,optional"`
	URL             hcl.Expression `hcl:"url,optional"`
	ImageFilename   hcl.Expression `hcl:"image_filename,optional"`
	Description     hcl.Expression `hcl:"description,optional"`
	PostDescription hcl.Expression `hcl:"post_description,optional"`
}

// Route is the HCL shape of a route overlay.
type Route struct {
	Slug string `hcl:"slug,label"`
	Name string `hcl:"name,optional"`
}
