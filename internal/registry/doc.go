// Package registry holds the ordered catalog of visualization descriptors.
//
// The Registry is the single source of truth for what the gallery contains
// and in which order the landing page shows it. It is built once at startup
// from the loaded catalog and is immutable afterwards. Construction fails
// if any descriptor is malformed or if two descriptors share a url, since
// a silently dropped entry is a content bug rather than a soft failure.
package registry
