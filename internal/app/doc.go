// Package app wires the gallery together. NewApp takes the catalog loader
// and the view source as explicit dependencies, builds the registry, the
// route table and the HTTP surface once, and refuses to start when the
// catalog is malformed or out of sync with the available views.
package app
