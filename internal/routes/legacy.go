package routes

import (
	"strings"

	"github.com/vk/visgallery/internal/registry"
)

// LegacyTarget reports whether path is an absolute reference disguised as
// an in-app path, and returns the URL the browsing context must load.
//
// Two shapes are recognised: protocol-relative paths ("//host/page.html"),
// which are handed off unchanged, and a single leading slash followed by an
// absolute URL ("/https://host/page.html").
func LegacyTarget(path string) (string, bool) {
	if strings.HasPrefix(path, "//") {
		return path, true
	}
	if rest, ok := strings.CutPrefix(path, "/"); ok && registry.IsExternal(rest) {
		return rest, true
	}
	return "", false
}

// LinkPath returns the in-app path a catalog link should point at for url.
// In-app slugs become "/slug"; absolute references become a path the
// wildcard route hands back off, so callers never branch on the url shape.
func LinkPath(url string) string {
	if strings.HasPrefix(url, "//") {
		return url
	}
	return "/" + url
}
