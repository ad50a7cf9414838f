// Package testutil holds fixtures and harnesses shared by package tests.
package testutil

// Descriptor renders one HCL visualization block.
func Descriptor(title, url string) string {
	return `
visualization {
  title          = "` + title + `"
  subtitle       = "subtitle of ` + title + `"
  date           = "Jul 10, 2017"
  url            = "` + url + `"
  image_filename = "` + title + `.png"
}
`
}

// SampleFiles is a small, consistent gallery: two in-app entries and one
// legacy page.
func SampleFiles() map[string]string {
	return map[string]string{
		"catalog/main.hcl": Descriptor("Weather in Boulder", "weather") +
			Descriptor("Songs over Time by BPM", "bpm-3") +
			Descriptor("BPM Visual Revisited", "//jpecht.com/vis-old/bpm_visual_2.html") + `
route "bpm-3" {
  name = "bpm3"
}
`,
		"views/weather.html":     `<h1>{{.Descriptor.Title}}</h1>`,
		"views/bpm-3.html":       `<h1>{{.Descriptor.Title}}</h1><a href="{{.BasePath}}/">back</a>`,
		"thumbnails/weather.png": "png",
	}
}
