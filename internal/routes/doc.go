// Package routes derives the gallery's route table from the descriptor
// registry and resolves navigation paths against it.
//
// Every in-app descriptor gets exactly one route, "/" + slug, bound to a
// deferred view loader. Paths are matched by exact string. Anything the
// table does not claim falls through to the wildcard: absolute-looking
// paths are handed off to the browsing context as legacy redirects, all
// other paths are reported as not found.
package routes
