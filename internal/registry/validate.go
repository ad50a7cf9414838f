package registry

import (
	"errors"
	"strings"
	"unicode"
)

// Validate checks descs for missing required fields, malformed slugs and
// duplicate urls. Every problem found is reported; the returned error is
// an errors.Join of *FieldError and *DuplicateURLError values.
func Validate(descs []Descriptor) error {
	var errs []error
	seen := make(map[string]int, len(descs))

	for i, d := range descs {
		required := []struct {
			field string
			value string
		}{
			{"title", d.Title},
			{"subtitle", d.Subtitle},
			{"date", d.Date},
			{"url", d.URL},
			{"image_filename", d.ImageFilename},
		}
		for _, f := range required {
			if strings.TrimSpace(f.value) == "" {
				errs = append(errs, &FieldError{Index: i, Source: d.Source, Field: f.field, Reason: "is required"})
			}
		}

		if d.URL == "" {
			continue
		}
		if !d.IsExternal() {
			if reason := checkSlug(d.URL); reason != "" {
				errs = append(errs, &FieldError{Index: i, Source: d.Source, Field: "url", Reason: reason})
			}
		}
		if first, dup := seen[d.URL]; dup {
			errs = append(errs, &DuplicateURLError{
				URL:          d.URL,
				First:        first,
				FirstSource:  descs[first].Source,
				Second:       i,
				SecondSource: d.Source,
			})
			continue
		}
		seen[d.URL] = i
	}

	return errors.Join(errs...)
}

// checkSlug returns a non-empty reason if slug cannot be used as a single
// route path segment.
func checkSlug(slug string) string {
	if strings.Contains(slug, "/") {
		return "must be a bare slug or an absolute url, not a path"
	}
	if strings.IndexFunc(slug, unicode.IsSpace) >= 0 {
		return "must not contain whitespace"
	}
	return ""
}
