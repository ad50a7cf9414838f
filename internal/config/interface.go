package config

import "context"

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads catalog files from the given paths and translates them
	// into the format-agnostic model. Paths that do not exist are skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
